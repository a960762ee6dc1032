package repo

import (
	"context"

	"github.com/Egor213/LogDesk/internal/domain"
	"github.com/Egor213/LogDesk/internal/repo/fsrepo"
	"github.com/Egor213/LogDesk/internal/repo/pgdb"
	"github.com/Egor213/LogDesk/internal/repo/repoerrs"
	"github.com/Egor213/LogDesk/internal/repo/repotypes"
	"github.com/Egor213/LogDesk/pkg/postgres"
)

type LogFile interface {
	Read(ctx context.Context) ([]byte, error)
	Delete(ctx context.Context) error
}

type Audit interface {
	Record(ctx context.Context, rec *domain.AuditRecord) (int, error)
	List(ctx context.Context, filter repotypes.AuditFilter) ([]domain.AuditRecord, error)
}

type Repositories struct {
	LogFile
	Audit
}

// NewRepositories wires the debug log file repository and, when pg is not nil,
// the Postgres audit trail.
func NewRepositories(logPath string, pg *postgres.Postgres) *Repositories {
	var audit Audit = disabledAudit{}
	if pg != nil {
		audit = pgdb.NewAuditRepo(pg)
	}

	return &Repositories{
		LogFile: fsrepo.NewLogFileRepo(logPath),
		Audit:   audit,
	}
}

type disabledAudit struct{}

func (disabledAudit) Record(context.Context, *domain.AuditRecord) (int, error) {
	return 0, repoerrs.ErrAuditDisabled
}

func (disabledAudit) List(context.Context, repotypes.AuditFilter) ([]domain.AuditRecord, error) {
	return nil, repoerrs.ErrAuditDisabled
}
