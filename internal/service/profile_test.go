package service_test

import (
	"context"
	"testing"

	"github.com/smulube/stashboard/internal/domain"
	repository_mock "github.com/smulube/stashboard/internal/mocks/repository"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	"github.com/smulube/stashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestProfileService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.Profile{ID: 1, Owner: "admin", Token: "tok", SecretHash: string(hash)}

	testCases := []struct {
		name         string
		token        string
		secret       string
		mockBehavior func(r *repository_mock.MockProfile)
		wantErr      error
	}{
		{
			name:   "valid",
			token:  "tok",
			secret: "s3cret",
			mockBehavior: func(r *repository_mock.MockProfile) {
				r.EXPECT().GetProfileByToken(gomock.Any(), "tok").Return(stored, nil)
			},
		},
		{
			name:   "wrong secret",
			token:  "tok",
			secret: "guess",
			mockBehavior: func(r *repository_mock.MockProfile) {
				r.EXPECT().GetProfileByToken(gomock.Any(), "tok").Return(stored, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:   "unknown token",
			token:  "other",
			secret: "s3cret",
			mockBehavior: func(r *repository_mock.MockProfile) {
				r.EXPECT().GetProfileByToken(gomock.Any(), "other").Return(domain.Profile{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:         "empty token",
			secret:       "s3cret",
			mockBehavior: func(r *repository_mock.MockProfile) {},
			wantErr:      service.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := repository_mock.NewMockProfile(ctrl)
			tc.mockBehavior(r)

			got, err := service.NewProfileService(r).Authenticate(context.Background(), tc.token, tc.secret)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "admin", got.Owner)
		})
	}
}

func TestProfileService_EnsureProfile_StoresHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := repository_mock.NewMockProfile(ctrl)
	r.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Profile) error {
			assert.Equal(t, "admin", p.Owner)
			assert.Equal(t, "tok", p.Token)
			assert.NotEqual(t, "s3cret", p.SecretHash)
			return bcrypt.CompareHashAndPassword([]byte(p.SecretHash), []byte("s3cret"))
		})

	err := service.NewProfileService(r).EnsureProfile(context.Background(), "admin", "tok", "s3cret")
	assert.NoError(t, err)
}
