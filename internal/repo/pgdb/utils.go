package pgdb

import (
	"time"

	"github.com/Egor213/LogDesk/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

func BuildAuditQueryFilters(filter repotypes.AuditFilter) ([]sq.Sqlizer, uint64) {
	conds := []sq.Sqlizer{}

	if filter.Action != "" {
		conds = append(conds, sq.Eq{"action": filter.Action})
	}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}
	if !filter.From.IsZero() && !filter.From.Equal(time.Unix(0, 0)) {
		conds = append(conds, sq.GtOrEq{"created_at": filter.From})
	}
	if !filter.To.IsZero() && !filter.To.Equal(time.Unix(0, 0)) {
		conds = append(conds, sq.LtOrEq{"created_at": filter.To})
	}

	limit := uint64(defaultAuditLimit)
	if filter.Limit > 0 {
		limit = uint64(min(filter.Limit, maxAuditLimit))
	}

	return conds, limit
}
