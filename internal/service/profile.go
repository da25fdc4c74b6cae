package service

import (
	"context"
	"errors"

	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/repo"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type ProfileService struct {
	profileRepo repo.Profile
	cost        int
}

func NewProfileService(pr repo.Profile) *ProfileService {
	return &ProfileService{
		profileRepo: pr,
		cost:        bcrypt.DefaultCost,
	}
}

func (s *ProfileService) Authenticate(ctx context.Context, token, secret string) (domain.Profile, error) {
	if token == "" || secret == "" {
		return domain.Profile{}, ErrInvalidCredentials
	}

	p, err := s.profileRepo.GetProfileByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Profile{}, ErrInvalidCredentials
		}
		return domain.Profile{}, errorsUtils.WrapPathErr(backendErr(err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.SecretHash), []byte(secret)); err != nil {
		return domain.Profile{}, ErrInvalidCredentials
	}
	return p, nil
}

// EnsureProfile stores owner's credentials, replacing older ones.
func (s *ProfileService) EnsureProfile(ctx context.Context, owner, token, secret string) error {
	if owner == "" || token == "" || secret == "" {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	err = s.profileRepo.UpsertProfile(ctx, &domain.Profile{
		Owner:      owner,
		Token:      token,
		SecretHash: string(hash),
	})
	if err != nil {
		return errorsUtils.WrapPathErr(backendErr(err))
	}
	return nil
}
