package pgdb_test

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/smulube/stashboard/internal/repo/pgdb"
	"github.com/smulube/stashboard/internal/repo/repotypes"
	"github.com/stretchr/testify/assert"
)

func TestBuildEventQueryFilters(t *testing.T) {
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		filter    repotypes.EventFilter
		wantSQL   string
		wantArgs  []any
		wantLimit uint64
	}{
		{
			name:      "empty",
			filter:    repotypes.EventFilter{},
			wantSQL:   "",
			wantArgs:  nil,
			wantLimit: 100,
		},
		{
			name: "day window",
			filter: repotypes.EventFilter{
				ServiceID: 7,
				From:      day,
				To:        day.AddDate(0, 0, 1),
				Limit:     40,
			},
			wantSQL:   "(e.service_id = ? AND e.started_at >= ? AND e.started_at < ?)",
			wantArgs:  []any{int64(7), day, day.AddDate(0, 0, 1)},
			wantLimit: 40,
		},
		{
			name: "worst event of a day",
			filter: repotypes.EventFilter{
				ServiceID:   7,
				From:        day,
				To:          day.AddDate(0, 0, 1),
				MinSeverity: 11,
				Limit:       1,
				Order:       repotypes.MostSevereFirst,
			},
			wantSQL:   "(e.service_id = ? AND e.started_at >= ? AND e.started_at < ? AND st.severity >= ?)",
			wantArgs:  []any{int64(7), day, day.AddDate(0, 0, 1), 11},
			wantLimit: 1,
		},
		{
			name:      "open upper bound",
			filter:    repotypes.EventFilter{ServiceID: 3, From: day},
			wantSQL:   "(e.service_id = ? AND e.started_at >= ?)",
			wantArgs:  []any{int64(3), day},
			wantLimit: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds, limit := pgdb.BuildEventQueryFilters(tc.filter)
			assert.Equal(t, tc.wantLimit, limit)

			if tc.wantSQL == "" {
				assert.Empty(t, conds)
				return
			}

			sql, args, err := sq.And(conds).ToSql()
			assert.NoError(t, err)
			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
