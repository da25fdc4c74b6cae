package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/smulube/stashboard/internal/domain"
	repository_mock "github.com/smulube/stashboard/internal/mocks/repository"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	"github.com/smulube/stashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatusService_Default(t *testing.T) {
	testCases := []struct {
		name    string
		repoSt  domain.Status
		repoErr error
		wantErr error
	}{
		{name: "normal status", repoSt: domain.Status{ID: 2, Slug: "up", Severity: 10}},
		{name: "none configured", repoErr: repoerrs.ErrNotFound, wantErr: service.ErrStatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := repository_mock.NewMockStatus(ctrl)
			r.EXPECT().GetStatusBySeverity(gomock.Any(), 10).Return(tc.repoSt, tc.repoErr)

			got, err := service.NewStatusService(r).Default(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.LevelNormal, got.Level())
		})
	}
}

func TestStatusService_Create(t *testing.T) {
	testCases := []struct {
		name         string
		in           service.StatusInput
		mockBehavior func(r *repository_mock.MockStatus)
		want         domain.Status
		wantErr      error
	}{
		{
			name: "success",
			in:   service.StatusInput{Name: "Maintenance", Image: "wrench", Level: "WARNING"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().
					CreateStatus(gomock.Any(), &domain.Status{Slug: "maintenance", Name: "Maintenance", Image: "wrench", Severity: 30}).
					Return(int64(4), nil)
			},
			want: domain.Status{ID: 4, Slug: "maintenance", Name: "Maintenance", Image: "wrench", Severity: 30},
		},
		{
			name:         "unknown level",
			in:           service.StatusInput{Name: "Maintenance", Level: "DEBUG"},
			mockBehavior: func(r *repository_mock.MockStatus) {},
			wantErr:      service.ErrInvalidLevel,
		},
		{
			name: "duplicate",
			in:   service.StatusInput{Name: "Down", Level: "ERROR"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().CreateStatus(gomock.Any(), gomock.Any()).Return(int64(0), repoerrs.ErrAlreadyExists)
			},
			wantErr: service.ErrStatusAlreadyExists,
		},
		{
			name: "second NORMAL status",
			in:   service.StatusInput{Name: "Operational", Level: "NORMAL"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().GetStatusBySeverity(gomock.Any(), 10).Return(domain.Status{ID: 2, Slug: "up", Severity: 10}, nil)
			},
			wantErr: service.ErrDefaultStatusExists,
		},
		{
			name: "first NORMAL status",
			in:   service.StatusInput{Name: "Up", Image: "tick-circle", Level: "NORMAL"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().GetStatusBySeverity(gomock.Any(), 10).Return(domain.Status{}, repoerrs.ErrNotFound)
				r.EXPECT().CreateStatus(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			want: domain.Status{ID: 1, Slug: "up", Name: "Up", Image: "tick-circle", Severity: 10},
		},
		{
			name:         "transliterated slug too long",
			in:           service.StatusInput{Name: strings.Repeat("中", 33), Level: "WARNING"},
			mockBehavior: func(r *repository_mock.MockStatus) {},
			wantErr:      service.ErrInvalidName,
		},
		{
			name: "severity rejected by storage",
			in:   service.StatusInput{Name: "Maintenance", Level: "CRITICAL"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().CreateStatus(gomock.Any(), gomock.Any()).Return(int64(0), repoerrs.ErrInvalidValue)
			},
			wantErr: service.ErrInvalidLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := repository_mock.NewMockStatus(ctrl)
			tc.mockBehavior(r)

			got, err := service.NewStatusService(r).Create(context.Background(), tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := repository_mock.NewMockStatus(ctrl)
	r.EXPECT().GetStatusBySlug(gomock.Any(), "up").Return(domain.Status{ID: 1, Slug: "up", Name: "Up", Image: "tick-circle", Severity: 10}, nil)
	r.EXPECT().
		UpdateStatus(gomock.Any(), &domain.Status{ID: 1, Slug: "up", Name: "Operational", Image: "tick-circle", Severity: 10}).
		Return(nil)

	got, err := service.NewStatusService(r).Update(context.Background(), "up", service.StatusInput{Name: "Operational"})
	require.NoError(t, err)
	assert.Equal(t, "up", got.Slug)
	assert.Equal(t, "Operational", got.Name)
}

func TestStatusService_Update_DefaultStatusRules(t *testing.T) {
	up := domain.Status{ID: 1, Slug: "up", Name: "Up", Image: "tick-circle", Severity: 10}
	down := domain.Status{ID: 2, Slug: "down", Name: "Down", Image: "cross-circle", Severity: 40}

	type mockBehavior func(r *repository_mock.MockStatus)

	testCases := []struct {
		name         string
		statusSlug   string
		in           service.StatusInput
		mockBehavior mockBehavior
		wantSeverity int
		wantErr      error
	}{
		{
			name:       "default cannot leave NORMAL",
			statusSlug: "up",
			in:         service.StatusInput{Level: "ERROR"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().GetStatusBySlug(gomock.Any(), "up").Return(up, nil)
				r.EXPECT().GetStatusBySeverity(gomock.Any(), 10).Return(up, nil)
			},
			wantErr: service.ErrDefaultStatusLevel,
		},
		{
			name:       "another status cannot become NORMAL",
			statusSlug: "down",
			in:         service.StatusInput{Level: "NORMAL"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().GetStatusBySlug(gomock.Any(), "down").Return(down, nil)
				r.EXPECT().GetStatusBySeverity(gomock.Any(), 10).Return(up, nil)
			},
			wantErr: service.ErrDefaultStatusExists,
		},
		{
			name:       "non default changes level",
			statusSlug: "down",
			in:         service.StatusInput{Level: "CRITICAL"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().GetStatusBySlug(gomock.Any(), "down").Return(down, nil)
				r.EXPECT().GetStatusBySeverity(gomock.Any(), 10).Return(up, nil)
				r.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantSeverity: 50,
		},
		{
			name:       "default keeps its level",
			statusSlug: "up",
			in:         service.StatusInput{Level: "NORMAL", Description: "All good"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().GetStatusBySlug(gomock.Any(), "up").Return(up, nil)
				r.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantSeverity: 10,
		},
		{
			name:       "severity rejected by storage",
			statusSlug: "down",
			in:         service.StatusInput{Level: "WARNING"},
			mockBehavior: func(r *repository_mock.MockStatus) {
				r.EXPECT().GetStatusBySlug(gomock.Any(), "down").Return(down, nil)
				r.EXPECT().GetStatusBySeverity(gomock.Any(), 10).Return(up, nil)
				r.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(repoerrs.ErrInvalidValue)
			},
			wantErr: service.ErrInvalidLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := repository_mock.NewMockStatus(ctrl)
			tc.mockBehavior(r)

			got, err := service.NewStatusService(r).Update(context.Background(), tc.statusSlug, tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSeverity, got.Severity)
			assert.Equal(t, tc.statusSlug, got.Slug)
		})
	}
}
