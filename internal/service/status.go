package service

import (
	"context"
	"errors"

	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/repo"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
)

type StatusService struct {
	statusRepo repo.Status
}

func NewStatusService(sr repo.Status) *StatusService {
	return &StatusService{statusRepo: sr}
}

func (s *StatusService) List(ctx context.Context) ([]domain.Status, error) {
	statuses, err := s.statusRepo.ListStatuses(ctx)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(backendErr(err))
	}
	return statuses, nil
}

func (s *StatusService) GetBySlug(ctx context.Context, statusSlug string) (domain.Status, error) {
	return s.translate(s.statusRepo.GetStatusBySlug(ctx, statusSlug))
}

// Default returns the only status of NORMAL severity.
func (s *StatusService) Default(ctx context.Context) (domain.Status, error) {
	return s.translate(s.statusRepo.GetStatusBySeverity(ctx, domain.LevelNormal.Severity()))
}

func (s *StatusService) translate(st domain.Status, err error) (domain.Status, error) {
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Status{}, ErrStatusNotFound
		}
		return domain.Status{}, errorsUtils.WrapPathErr(backendErr(err))
	}
	return st, nil
}

// Create refuses a second NORMAL status; the default must stay unique.
func (s *StatusService) Create(ctx context.Context, in StatusInput) (domain.Status, error) {
	severity, ok := domain.SeverityOf(in.Level)
	if !ok {
		return domain.Status{}, ErrInvalidLevel
	}

	statusSlug, err := makeSlug(in.Name)
	if err != nil {
		return domain.Status{}, err
	}

	if severity == domain.LevelNormal.Severity() {
		_, err := s.Default(ctx)
		switch {
		case err == nil:
			return domain.Status{}, ErrDefaultStatusExists
		case !errors.Is(err, ErrStatusNotFound):
			return domain.Status{}, err
		}
	}

	st := domain.Status{
		Slug:        statusSlug,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Severity:    severity,
	}

	id, err := s.statusRepo.CreateStatus(ctx, &st)
	if err != nil {
		return domain.Status{}, s.writeErr(err)
	}
	st.ID = id
	return st, nil
}

// Update rewrites everything but the slug, which events refer to. The
// default status cannot leave NORMAL and no other status can join it.
func (s *StatusService) Update(ctx context.Context, statusSlug string, in StatusInput) (domain.Status, error) {
	st, err := s.GetBySlug(ctx, statusSlug)
	if err != nil {
		return domain.Status{}, err
	}

	if in.Level != "" {
		severity, ok := domain.SeverityOf(in.Level)
		if !ok {
			return domain.Status{}, ErrInvalidLevel
		}
		if severity != st.Severity {
			if err := s.checkDefaultChange(ctx, st, severity); err != nil {
				return domain.Status{}, err
			}
		}
		st.Severity = severity
	}
	if in.Name != "" {
		st.Name = in.Name
	}
	if in.Image != "" {
		st.Image = in.Image
	}
	if in.Description != "" {
		st.Description = in.Description
	}

	if err := s.statusRepo.UpdateStatus(ctx, &st); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Status{}, ErrStatusNotFound
		}
		return domain.Status{}, s.writeErr(err)
	}
	return st, nil
}

func (s *StatusService) checkDefaultChange(ctx context.Context, st domain.Status, severity int) error {
	normal := domain.LevelNormal.Severity()

	def, err := s.Default(ctx)
	if errors.Is(err, ErrStatusNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if def.ID == st.ID && severity != normal {
		return ErrDefaultStatusLevel
	}
	if def.ID != st.ID && severity == normal {
		return ErrDefaultStatusExists
	}
	return nil
}

func (s *StatusService) writeErr(err error) error {
	switch {
	case errors.Is(err, repoerrs.ErrAlreadyExists):
		return ErrStatusAlreadyExists
	case errors.Is(err, repoerrs.ErrInvalidValue):
		return ErrInvalidLevel
	default:
		return errorsUtils.WrapPathErr(backendErr(err))
	}
}
