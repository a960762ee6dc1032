package pgdb

import (
	"context"

	"github.com/Egor213/LogDesk/internal/domain"
	"github.com/Egor213/LogDesk/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogDesk/pkg/errors"
	"github.com/Egor213/LogDesk/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const auditTable = "debuglog_actions"

type AuditRepo struct {
	*postgres.Postgres
}

func NewAuditRepo(pg *postgres.Postgres) *AuditRepo {
	return &AuditRepo{pg}
}

func (r *AuditRepo) Record(ctx context.Context, rec *domain.AuditRecord) (int, error) {
	sql, args, err := r.Builder.
		Insert(auditTable).
		Columns("action", "status", "message", "remote_addr").
		Values(rec.Action, rec.Status, rec.Message, rec.RemoteAddr).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var id int
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *AuditRepo) List(ctx context.Context, filter repotypes.AuditFilter) ([]domain.AuditRecord, error) {
	conds, limit := BuildAuditQueryFilters(filter)

	query := r.Builder.
		Select("id", "action", "status", "message", "remote_addr", "created_at").
		From(auditTable).
		OrderBy("created_at DESC", "id DESC").
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
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AuditRecord])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return records, nil
}
