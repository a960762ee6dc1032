package service

import (
	"context"

	"github.com/Egor213/LogDesk/internal/domain"
	"github.com/Egor213/LogDesk/internal/metrics"
	"github.com/Egor213/LogDesk/internal/repo"
	"github.com/Egor213/LogDesk/internal/repo/repotypes"
)

type DebugLog interface {
	Read(ctx context.Context) (domain.LogContent, error)
	AppendTestEntry(ctx context.Context, meta domain.RequestMeta) domain.ActionResult
	Delete(ctx context.Context, meta domain.RequestMeta) domain.ActionResult
	History(ctx context.Context, filter repotypes.AuditFilter) ([]domain.AuditRecord, error)
}

// ErrorReporter is the process's error-logging facility.
type ErrorReporter interface {
	Report(message string)
	// Release closes any handle held on the debug log.
	Release() error
}

type EventPublisher interface {
	PublishAction(ctx context.Context, event domain.ActionEvent) error
}

type Services struct {
	DebugLog DebugLog
}

type ServicesDependencies struct {
	Repos     *repo.Repositories
	Reporter  ErrorReporter
	Publisher EventPublisher
	Counters  *metrics.Counters
}

func NewServices(deps ServicesDependencies) *Services {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = nopPublisher{}
	}

	return &Services{
		DebugLog: NewDebugLogService(deps.Repos.LogFile, deps.Repos.Audit, deps.Reporter, publisher, deps.Counters),
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishAction(context.Context, domain.ActionEvent) error {
	return nil
}
