package pgdb_test

import (
	"testing"
	"time"

	"github.com/Egor213/LogDesk/internal/repo/pgdb"
	"github.com/Egor213/LogDesk/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAuditQueryFilters(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	testCases := []struct {
		name      string
		filter    repotypes.AuditFilter
		wantSQL   string
		wantArgs  []any
		wantLimit uint64
	}{
		{
			name:      "empty filter",
			filter:    repotypes.AuditFilter{},
			wantLimit: 50,
		},
		{
			name:      "action and status",
			filter:    repotypes.AuditFilter{Action: "delete", Status: "error", Limit: 5},
			wantSQL:   "(action = $1 AND status = $2)",
			wantArgs:  []any{"delete", "error"},
			wantLimit: 5,
		},
		{
			name:      "time range and clamped limit",
			filter:    repotypes.AuditFilter{From: from, To: to, Limit: 10000},
			wantSQL:   "(created_at >= $1 AND created_at <= $2)",
			wantArgs:  []any{from, to},
			wantLimit: 500,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds, limit := pgdb.BuildAuditQueryFilters(tc.filter)
			assert.Equal(t, tc.wantLimit, limit)

			if tc.wantSQL == "" {
				assert.Empty(t, conds)
				return
			}

			sql, args, err := sq.And(conds).ToSql()
			require.NoError(t, err)

			sql, err = sq.Dollar.ReplacePlaceholders(sql)
			require.NoError(t, err)

			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
