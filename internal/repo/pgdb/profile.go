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

type ProfileRepo struct {
	*postgres.Postgres
}

func NewProfileRepo(pg *postgres.Postgres) *ProfileRepo {
	return &ProfileRepo{pg}
}

func (r *ProfileRepo) GetProfileByToken(ctx context.Context, token string) (domain.Profile, error) {
	sql, args, _ := r.Builder.
		Select("id", "owner", "token", "secret_hash", "created_at").
		From("profiles").
		Where(sq.Eq{"token": token}).
		ToSql()

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Profile{}, errorsUtils.WrapPathErr(err)
	}

	p, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, repoerrs.ErrNotFound
		}
		return domain.Profile{}, errorsUtils.WrapPathErr(err)
	}
	return p, nil
}

// UpsertProfile creates the owner's profile or replaces its credentials.
func (r *ProfileRepo) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	sql, args, _ := r.Builder.
		Insert("profiles").
		Columns("owner", "token", "secret_hash").
		Values(p.Owner, p.Token, p.SecretHash).
		Suffix("ON CONFLICT (owner) DO UPDATE SET token = EXCLUDED.token, secret_hash = EXCLUDED.secret_hash RETURNING id").
		ToSql()

	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&p.ID)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return repoerrs.ErrAlreadyExists
		}
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
