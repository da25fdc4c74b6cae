package pgdb

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
	"github.com/smulube/stashboard/pkg/postgres"
)

type SettingRepo struct {
	*postgres.Postgres
}

func NewSettingRepo(pg *postgres.Postgres) *SettingRepo {
	return &SettingRepo{pg}
}

func (r *SettingRepo) SettingExists(ctx context.Context, name string) (bool, error) {
	sql, args, _ := r.Builder.
		Select("id").
		From("settings").
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()

	var id int64
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errorsUtils.WrapPathErr(err)
	}
	return true, nil
}

// ClaimSetting inserts the setting unless it exists and reports whether
// this call created it. Concurrent callers block on the unique index until
// the first transaction finishes, so exactly one of them wins.
func (r *SettingRepo) ClaimSetting(ctx context.Context, name string) (bool, error) {
	sql, args, _ := r.Builder.
		Insert("settings").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING RETURNING id").
		ToSql()

	var id int64
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errorsUtils.WrapPathErr(err)
	}
	return true, nil
}
