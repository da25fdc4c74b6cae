package pgdb

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/smulube/stashboard/internal/repo/repotypes"
)

const defaultEventLimit = 100

func BuildEventQueryFilters(filter repotypes.EventFilter) ([]sq.Sqlizer, uint64) {
	conds := []sq.Sqlizer{}

	if filter.ServiceID != 0 {
		conds = append(conds, sq.Eq{"e.service_id": filter.ServiceID})
	}
	if !filter.From.IsZero() {
		conds = append(conds, sq.GtOrEq{"e.started_at": filter.From})
	}
	if !filter.To.IsZero() {
		conds = append(conds, sq.Lt{"e.started_at": filter.To})
	}
	if filter.MinSeverity > 0 {
		conds = append(conds, sq.GtOrEq{"st.severity": filter.MinSeverity})
	}

	limit := uint64(defaultEventLimit)
	if filter.Limit > 0 {
		limit = uint64(filter.Limit)
	}

	return conds, limit
}

func eventOrderBy(order repotypes.EventOrder) []string {
	switch order {
	case repotypes.OldestFirst:
		return []string{"e.started_at ASC", "e.id ASC"}
	case repotypes.MostSevereFirst:
		return []string{"st.severity DESC", "e.started_at DESC", "e.id DESC"}
	default:
		return []string{"e.started_at DESC", "e.id DESC"}
	}
}
