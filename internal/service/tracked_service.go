package service

import (
	"context"
	"errors"
	"time"

	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/repo"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	"github.com/smulube/stashboard/internal/repo/repotypes"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
)

const (
	serviceListLimit   = 100
	trailingDays       = 5
	eventsForDayLimit  = 40
	historyEventsLimit = 100
)

type ServiceService struct {
	serviceRepo repo.Service
	statusRepo  repo.Status
	eventRepo   repo.Event
	loc         *time.Location
	now         func() time.Time
}

func NewServiceService(sr repo.Service, str repo.Status, er repo.Event, loc *time.Location, now func() time.Time) *ServiceService {
	return &ServiceService{
		serviceRepo: sr,
		statusRepo:  str,
		eventRepo:   er,
		loc:         loc,
		now:         now,
	}
}

func (s *ServiceService) List(ctx context.Context) ([]domain.Service, error) {
	services, err := s.serviceRepo.ListServices(ctx, serviceListLimit)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(backendErr(err))
	}
	return services, nil
}

func (s *ServiceService) GetBySlug(ctx context.Context, serviceSlug string) (domain.Service, error) {
	svc, err := s.serviceRepo.GetServiceBySlug(ctx, serviceSlug)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Service{}, ErrServiceNotFound
		}
		return domain.Service{}, errorsUtils.WrapPathErr(backendErr(err))
	}
	return svc, nil
}

func (s *ServiceService) Create(ctx context.Context, in ServiceInput) (domain.Service, error) {
	serviceSlug, err := makeSlug(in.Name)
	if err != nil {
		return domain.Service{}, err
	}
	svc := domain.Service{
		Slug:        serviceSlug,
		Name:        in.Name,
		Description: in.Description,
	}

	id, err := s.serviceRepo.CreateService(ctx, &svc)
	if err != nil {
		if errors.Is(err, repoerrs.ErrAlreadyExists) {
			return domain.Service{}, ErrServiceAlreadyExists
		}
		return domain.Service{}, errorsUtils.WrapPathErr(backendErr(err))
	}
	svc.ID = id
	return svc, nil
}

// Update changes the non-empty fields of in. The slug never changes.
func (s *ServiceService) Update(ctx context.Context, serviceSlug string, in ServiceInput) (domain.Service, error) {
	svc, err := s.GetBySlug(ctx, serviceSlug)
	if err != nil {
		return domain.Service{}, err
	}

	if in.Name != "" {
		svc.Name = in.Name
	}
	if in.Description != "" {
		svc.Description = in.Description
	}

	if err := s.serviceRepo.UpdateService(ctx, &svc); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Service{}, ErrServiceNotFound
		}
		return domain.Service{}, errorsUtils.WrapPathErr(backendErr(err))
	}
	return svc, nil
}

// Delete removes the service and returns it. A service that still owns
// events is refused.
func (s *ServiceService) Delete(ctx context.Context, serviceSlug string) (domain.Service, error) {
	svc, err := s.GetBySlug(ctx, serviceSlug)
	if err != nil {
		return domain.Service{}, err
	}

	err = s.serviceRepo.DeleteService(ctx, svc.ID)
	switch {
	case err == nil:
		return svc, nil
	case errors.Is(err, repoerrs.ErrNotFound):
		return domain.Service{}, ErrServiceNotFound
	case errors.Is(err, repoerrs.ErrHasDependents):
		return domain.Service{}, ErrServiceHasEvents
	default:
		return domain.Service{}, errorsUtils.WrapPathErr(backendErr(err))
	}
}

// CurrentEvent returns the latest event of svc, nil if it has none.
func (s *ServiceService) CurrentEvent(ctx context.Context, svc domain.Service) (*domain.Event, error) {
	e, err := s.eventRepo.GetLatestEvent(ctx, svc.ID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return nil, nil
		}
		return nil, errorsUtils.WrapPathErr(backendErr(err))
	}
	return &e, nil
}

// LastFiveDays summarizes the days before today. Each day costs one query
// returning only its most severe event above the default status, so a busy
// day never hides the others.
func (s *ServiceService) LastFiveDays(ctx context.Context, svc domain.Service) ([]domain.DaySummary, error) {
	def, err := s.statusRepo.GetStatusBySeverity(ctx, domain.LevelNormal.Severity())
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, errorsUtils.WrapPathErr(backendErr(err))
	}

	today := s.now().In(s.loc)
	from, _ := domain.DayWindow(today, trailingDays)

	var worst []domain.Event
	for i := range trailingDays {
		day := from.AddDate(0, 0, i)
		events, err := s.eventRepo.ListEvents(ctx, repotypes.EventFilter{
			ServiceID:   svc.ID,
			From:        day,
			To:          day.AddDate(0, 0, 1),
			MinSeverity: def.Severity + 1,
			Limit:       1,
			Order:       repotypes.MostSevereFirst,
		})
		if err != nil {
			return nil, errorsUtils.WrapPathErr(backendErr(err))
		}
		worst = append(worst, events...)
	}

	return domain.SummarizeDays(today, trailingDays, def, worst), nil
}

// EventsForDay returns the events of svc starting in [day, day+1d).
func (s *ServiceService) EventsForDay(ctx context.Context, svc domain.Service, day time.Time) ([]domain.Event, error) {
	events, err := s.eventRepo.ListEvents(ctx, repotypes.EventFilter{
		ServiceID: svc.ID,
		From:      day,
		To:        day.AddDate(0, 0, 1),
		Limit:     eventsForDayLimit,
		Order:     repotypes.OldestFirst,
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(backendErr(err))
	}
	return events, nil
}

// History lists events of a year, a month or a single day. month and day
// may be empty.
func (s *ServiceService) History(ctx context.Context, svc domain.Service, year, month, day string) ([]domain.Event, error) {
	from, to, err := domain.DateRange(year, month, day, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	events, err := s.eventRepo.ListEvents(ctx, repotypes.EventFilter{
		ServiceID: svc.ID,
		From:      from,
		To:        to,
		Limit:     historyEventsLimit,
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(backendErr(err))
	}
	return events, nil
}
