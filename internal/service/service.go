package service

import (
	"context"
	"time"

	"github.com/smulube/stashboard/internal/broker"
	"github.com/smulube/stashboard/internal/cache"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/metrics"
	"github.com/smulube/stashboard/internal/repo"
)

type ServiceInput struct {
	Name        string
	Description string
}

type StatusInput struct {
	Name        string
	Description string
	Image       string
	Level       string
}

type EventInput struct {
	StatusSlug    string
	Message       string
	Informational bool
}

// EventQuery bounds an event listing to [From, To). Zero values are open.
type EventQuery struct {
	From time.Time
	To   time.Time
}

type Service interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetBySlug(ctx context.Context, slug string) (domain.Service, error)
	Create(ctx context.Context, in ServiceInput) (domain.Service, error)
	Update(ctx context.Context, slug string, in ServiceInput) (domain.Service, error)
	Delete(ctx context.Context, slug string) (domain.Service, error)
	CurrentEvent(ctx context.Context, svc domain.Service) (*domain.Event, error)
	LastFiveDays(ctx context.Context, svc domain.Service) ([]domain.DaySummary, error)
	EventsForDay(ctx context.Context, svc domain.Service, day time.Time) ([]domain.Event, error)
	History(ctx context.Context, svc domain.Service, year, month, day string) ([]domain.Event, error)
}

type Status interface {
	List(ctx context.Context) ([]domain.Status, error)
	GetBySlug(ctx context.Context, slug string) (domain.Status, error)
	Default(ctx context.Context) (domain.Status, error)
	Create(ctx context.Context, in StatusInput) (domain.Status, error)
	Update(ctx context.Context, slug string, in StatusInput) (domain.Status, error)
}

type Event interface {
	List(ctx context.Context, serviceSlug string, q EventQuery) ([]domain.Event, error)
	Get(ctx context.Context, serviceSlug, sid string) (domain.Event, error)
	Current(ctx context.Context, serviceSlug string) (*domain.Event, error)
	Create(ctx context.Context, serviceSlug string, in EventInput) (domain.Event, error)
}

type Installer interface {
	EnsureDefaults(ctx context.Context) (bool, error)
}

type Profile interface {
	Authenticate(ctx context.Context, token, secret string) (domain.Profile, error)
	EnsureProfile(ctx context.Context, owner, token, secret string) error
}

// TxManager runs fn inside one transaction carried by ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Services struct {
	Service
	Status
	Event
	Installer
	Profile
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	TrManager      TxManager
	Cache          cache.Flags
	Location       *time.Location
}

func NewServices(deps ServicesDependencies) *Services {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Services{
		Service:   NewServiceService(deps.Repos.Service, deps.Repos.Status, deps.Repos.Event, loc, time.Now),
		Status:    NewStatusService(deps.Repos.Status),
		Event:     NewEventService(deps.Repos.Service, deps.Repos.Status, deps.Repos.Event, deps.Counters, deps.BrokerProducer),
		Installer: NewInstallService(deps.Repos.Setting, deps.Repos.Status, deps.TrManager, deps.Cache, deps.Counters),
		Profile:   NewProfileService(deps.Repos.Profile),
	}
}
