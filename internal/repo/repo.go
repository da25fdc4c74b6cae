package repo

import (
	"context"

	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/repo/pgdb"
	"github.com/smulube/stashboard/internal/repo/repotypes"
	"github.com/smulube/stashboard/pkg/postgres"
)

type Service interface {
	CreateService(ctx context.Context, s *domain.Service) (int64, error)
	GetServiceBySlug(ctx context.Context, slug string) (domain.Service, error)
	ListServices(ctx context.Context, limit int) ([]domain.Service, error)
	UpdateService(ctx context.Context, s *domain.Service) error
	DeleteService(ctx context.Context, id int64) error
}

type Status interface {
	CreateStatus(ctx context.Context, st *domain.Status) (int64, error)
	GetStatusBySlug(ctx context.Context, slug string) (domain.Status, error)
	GetStatusBySeverity(ctx context.Context, severity int) (domain.Status, error)
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	UpdateStatus(ctx context.Context, st *domain.Status) error
}

type Event interface {
	CreateEvent(ctx context.Context, e *domain.Event) (int64, error)
	GetEvent(ctx context.Context, serviceID int64, sid string) (domain.Event, error)
	GetLatestEvent(ctx context.Context, serviceID int64) (domain.Event, error)
	ListEvents(ctx context.Context, filter repotypes.EventFilter) ([]domain.Event, error)
}

type Setting interface {
	SettingExists(ctx context.Context, name string) (bool, error)
	ClaimSetting(ctx context.Context, name string) (bool, error)
}

type Profile interface {
	GetProfileByToken(ctx context.Context, token string) (domain.Profile, error)
	UpsertProfile(ctx context.Context, p *domain.Profile) error
}

type Repositories struct {
	Service
	Status
	Event
	Setting
	Profile
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Service: pgdb.NewServiceRepo(pg),
		Status:  pgdb.NewStatusRepo(pg),
		Event:   pgdb.NewEventRepo(pg),
		Setting: pgdb.NewSettingRepo(pg),
		Profile: pgdb.NewProfileRepo(pg),
	}
}
