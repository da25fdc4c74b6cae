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

var statusColumns = []string{"id", "slug", "name", "description", "image", "severity", "created_at"}

type StatusRepo struct {
	*postgres.Postgres
}

func NewStatusRepo(pg *postgres.Postgres) *StatusRepo {
	return &StatusRepo{pg}
}

func (r *StatusRepo) CreateStatus(ctx context.Context, st *domain.Status) (int64, error) {
	sql, args, _ := r.Builder.
		Insert("statuses").
		Columns("slug", "name", "description", "image", "severity").
		Values(st.Slug, st.Name, st.Description, st.Image, st.Severity).
		Suffix("RETURNING id").
		ToSql()

	var id int64
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return 0, repoerrs.ErrAlreadyExists
		}
		if errorsUtils.IsCheckViolation(err) {
			return 0, repoerrs.ErrInvalidValue
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *StatusRepo) GetStatusBySlug(ctx context.Context, slug string) (domain.Status, error) {
	return r.getOne(ctx, sq.Eq{"slug": slug})
}

// GetStatusBySeverity returns the first created status with the severity.
func (r *StatusRepo) GetStatusBySeverity(ctx context.Context, severity int) (domain.Status, error) {
	return r.getOne(ctx, sq.Eq{"severity": severity})
}

func (r *StatusRepo) getOne(ctx context.Context, cond sq.Sqlizer) (domain.Status, error) {
	sql, args, _ := r.Builder.
		Select(statusColumns...).
		From("statuses").
		Where(cond).
		OrderBy("id").
		Limit(1).
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Status{}, errorsUtils.WrapPathErr(err)
	}

	st, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Status])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Status{}, repoerrs.ErrNotFound
		}
		return domain.Status{}, errorsUtils.WrapPathErr(err)
	}
	return st, nil
}

func (r *StatusRepo) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	sql, args, _ := r.Builder.
		Select(statusColumns...).
		From("statuses").
		OrderBy("severity", "id").
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	statuses, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Status])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return statuses, nil
}

func (r *StatusRepo) UpdateStatus(ctx context.Context, st *domain.Status) error {
	sql, args, _ := r.Builder.
		Update("statuses").
		Set("name", st.Name).
		Set("description", st.Description).
		Set("image", st.Image).
		Set("severity", st.Severity).
		Where(sq.Eq{"id": st.ID}).
		ToSql()

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return repoerrs.ErrAlreadyExists
		}
		if errorsUtils.IsCheckViolation(err) {
			return repoerrs.ErrInvalidValue
		}
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}
