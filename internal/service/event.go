package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/smulube/stashboard/internal/broker"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/metrics"
	"github.com/smulube/stashboard/internal/repo"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	"github.com/smulube/stashboard/internal/repo/repotypes"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
)

const eventListLimit = 100

// EventNotification is published to the broker for every new event.
type EventNotification struct {
	SID           string `json:"sid"`
	Service       string `json:"service"`
	Status        string `json:"status"`
	Level         string `json:"level"`
	Message       string `json:"message"`
	Informational bool   `json:"informational"`
	Timestamp     string `json:"timestamp"`
}

type EventService struct {
	serviceRepo    repo.Service
	statusRepo     repo.Status
	eventRepo      repo.Event
	counters       *metrics.Counters
	brokerProducer broker.Producer
}

// NewEventService builds the service; p may be nil to disable notifications.
func NewEventService(sr repo.Service, str repo.Status, er repo.Event, cnt *metrics.Counters, p broker.Producer) *EventService {
	return &EventService{
		serviceRepo:    sr,
		statusRepo:     str,
		eventRepo:      er,
		counters:       cnt,
		brokerProducer: p,
	}
}

func (s *EventService) service(ctx context.Context, serviceSlug string) (domain.Service, error) {
	svc, err := s.serviceRepo.GetServiceBySlug(ctx, serviceSlug)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Service{}, ErrServiceNotFound
		}
		return domain.Service{}, errorsUtils.WrapPathErr(backendErr(err))
	}
	return svc, nil
}

func (s *EventService) List(ctx context.Context, serviceSlug string, q EventQuery) ([]domain.Event, error) {
	svc, err := s.service(ctx, serviceSlug)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListEvents(ctx, repotypes.EventFilter{
		ServiceID: svc.ID,
		From:      q.From,
		To:        q.To,
		Limit:     eventListLimit,
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(backendErr(err))
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, serviceSlug, sid string) (domain.Event, error) {
	svc, err := s.service(ctx, serviceSlug)
	if err != nil {
		return domain.Event{}, err
	}

	if _, err := uuid.Parse(sid); err != nil {
		return domain.Event{}, ErrEventNotFound
	}

	e, err := s.eventRepo.GetEvent(ctx, svc.ID, sid)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		return domain.Event{}, errorsUtils.WrapPathErr(backendErr(err))
	}
	return e, nil
}

// Current returns the latest event of the service, nil if it has none.
func (s *EventService) Current(ctx context.Context, serviceSlug string) (*domain.Event, error) {
	svc, err := s.service(ctx, serviceSlug)
	if err != nil {
		return nil, err
	}

	e, err := s.eventRepo.GetLatestEvent(ctx, svc.ID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return nil, nil
		}
		return nil, errorsUtils.WrapPathErr(backendErr(err))
	}
	return &e, nil
}

func (s *EventService) Create(ctx context.Context, serviceSlug string, in EventInput) (domain.Event, error) {
	svc, err := s.service(ctx, serviceSlug)
	if err != nil {
		return domain.Event{}, err
	}

	st, err := s.statusRepo.GetStatusBySlug(ctx, in.StatusSlug)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Event{}, ErrStatusNotFound
		}
		return domain.Event{}, errorsUtils.WrapPathErr(backendErr(err))
	}

	e := domain.Event{
		SID:           uuid.NewString(),
		Informational: in.Informational,
		Message:       in.Message,
		Status:        st,
		Service:       svc,
	}

	if _, err := s.eventRepo.CreateEvent(ctx, &e); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Event{}, ErrServiceNotFound
		}
		return domain.Event{}, errorsUtils.WrapPathErr(backendErr(err))
	}

	s.counters.EventsCreated.Inc(svc.Slug, st.Slug)
	s.notify(ctx, e)

	return e, nil
}

// notify publishes e. The event is already stored, so failures are only logged.
func (s *EventService) notify(ctx context.Context, e domain.Event) {
	if s.brokerProducer == nil {
		return
	}

	payload, err := json.Marshal(EventNotification{
		SID:           e.SID,
		Service:       e.Service.Slug,
		Status:        e.Status.Slug,
		Level:         e.Status.Level().String(),
		Message:       e.Message,
		Informational: e.Informational,
		Timestamp:     e.Start.UTC().Format(http.TimeFormat),
	})
	if err != nil {
		log.WithField("sid", e.SID).Errorf("Cannot encode event notification: %v", err)
		return
	}

	if err := s.brokerProducer.SendMessage(ctx, []byte(e.Service.Slug), payload); err != nil {
		log.WithFields(log.Fields{
			"sid":     e.SID,
			"service": e.Service.Slug,
		}).Warnf("Event notification not delivered: %v", err)
	}
}
