package pgdb

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	"github.com/smulube/stashboard/internal/repo/repotypes"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
	"github.com/smulube/stashboard/pkg/postgres"
)

var eventColumns = []string{
	"e.id", "e.sid::text", "e.started_at", "e.informational", "e.message",
	"st.id", "st.slug", "st.name", "st.description", "st.image", "st.severity", "st.created_at",
	"s.id", "s.slug", "s.name", "s.description", "s.created_at",
}

type EventRepo struct {
	*postgres.Postgres
}

func NewEventRepo(pg *postgres.Postgres) *EventRepo {
	return &EventRepo{pg}
}

func (r *EventRepo) selectEvents() sq.SelectBuilder {
	return r.Builder.
		Select(eventColumns...).
		From("events e").
		Join("statuses st ON st.id = e.status_id").
		Join("services s ON s.id = e.service_id")
}

func scanEvent(row pgx.CollectableRow) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.SID, &e.Start, &e.Informational, &e.Message,
		&e.Status.ID, &e.Status.Slug, &e.Status.Name, &e.Status.Description,
		&e.Status.Image, &e.Status.Severity, &e.Status.CreatedAt,
		&e.Service.ID, &e.Service.Slug, &e.Service.Name, &e.Service.Description, &e.Service.CreatedAt,
	)
	return e, err
}

// CreateEvent stores e using e.Service.ID and e.Status.ID as references.
// A zero Start defaults to the database clock.
func (r *EventRepo) CreateEvent(ctx context.Context, e *domain.Event) (int64, error) {
	columns := []string{"sid", "service_id", "status_id", "message", "informational"}
	values := []any{sq.Expr("?::uuid", e.SID), e.Service.ID, e.Status.ID, e.Message, e.Informational}
	if !e.Start.IsZero() {
		columns = append(columns, "started_at")
		values = append(values, e.Start)
	}

	sql, args, _ := r.Builder.
		Insert("events").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id, started_at").
		ToSql()

	var id int64
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id, &e.Start)
	if err != nil {
		if errorsUtils.IsForeignKeyViolation(err) {
			return 0, repoerrs.ErrNotFound
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	e.ID = id
	return id, nil
}

func (r *EventRepo) GetEvent(ctx context.Context, serviceID int64, sid string) (domain.Event, error) {
	sql, args, _ := r.selectEvents().
		Where(sq.Eq{"e.service_id": serviceID, "e.sid::text": sid}).
		Limit(1).
		ToSql()

	return r.collectOne(ctx, sql, args)
}

func (r *EventRepo) GetLatestEvent(ctx context.Context, serviceID int64) (domain.Event, error) {
	sql, args, _ := r.selectEvents().
		Where(sq.Eq{"e.service_id": serviceID}).
		OrderBy(eventOrderBy(repotypes.NewestFirst)...).
		Limit(1).
		ToSql()

	return r.collectOne(ctx, sql, args)
}

func (r *EventRepo) collectOne(ctx context.Context, sql string, args []any) (domain.Event, error) {
	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Event{}, errorsUtils.WrapPathErr(err)
	}

	e, err := pgx.CollectOneRow(rows, scanEvent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, repoerrs.ErrNotFound
		}
		return domain.Event{}, errorsUtils.WrapPathErr(err)
	}
	return e, nil
}

func (r *EventRepo) ListEvents(ctx context.Context, filter repotypes.EventFilter) ([]domain.Event, error) {
	conds, limit := BuildEventQueryFilters(filter)

	query := r.selectEvents().
		OrderBy(eventOrderBy(filter.Order)...).
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	events, err := pgx.CollectRows(rows, scanEvent)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return events, nil
}
