package pgdb

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/smulube/stashboard/internal/domain"
	"github.com/smulube/stashboard/internal/repo/repoerrs"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
	"github.com/smulube/stashboard/pkg/postgres"
)

var serviceColumns = []string{"id", "slug", "name", "description", "created_at"}

type ServiceRepo struct {
	*postgres.Postgres
}

func NewServiceRepo(pg *postgres.Postgres) *ServiceRepo {
	return &ServiceRepo{pg}
}

func (r *ServiceRepo) CreateService(ctx context.Context, s *domain.Service) (int64, error) {
	sql, args, _ := r.Builder.
		Insert("services").
		Columns("slug", "name", "description").
		Values(s.Slug, s.Name, s.Description).
		Suffix("RETURNING id").
		ToSql()

	var id int64
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return 0, repoerrs.ErrAlreadyExists
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

// GetServiceBySlug returns the first service with the slug.
func (r *ServiceRepo) GetServiceBySlug(ctx context.Context, slug string) (domain.Service, error) {
	sql, args, _ := r.Builder.
		Select(serviceColumns...).
		From("services").
		Where(sq.Eq{"slug": slug}).
		OrderBy("id").
		Limit(1).
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Service{}, errorsUtils.WrapPathErr(err)
	}

	s, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Service])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Service{}, repoerrs.ErrNotFound
		}
		return domain.Service{}, errorsUtils.WrapPathErr(err)
	}
	return s, nil
}

func (r *ServiceRepo) ListServices(ctx context.Context, limit int) ([]domain.Service, error) {
	sql, args, _ := r.Builder.
		Select(serviceColumns...).
		From("services").
		OrderBy("name", "id").
		Limit(uint64(limit)).
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	services, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Service])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return services, nil
}

func (r *ServiceRepo) UpdateService(ctx context.Context, s *domain.Service) error {
	sql, args, _ := r.Builder.
		Update("services").
		Set("name", s.Name).
		Set("description", s.Description).
		Where(sq.Eq{"id": s.ID}).
		ToSql()

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}

func (r *ServiceRepo) DeleteService(ctx context.Context, id int64) error {
	sql, args, _ := r.Builder.
		Delete("services").
		Where(sq.Eq{"id": id}).
		ToSql()

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		if errorsUtils.IsForeignKeyViolation(err) {
			return repoerrs.ErrHasDependents
		}
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}
