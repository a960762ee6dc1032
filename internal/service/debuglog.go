package service

import (
	"context"
	"errors"
	"time"

	"github.com/Egor213/LogDesk/internal/domain"
	"github.com/Egor213/LogDesk/internal/metrics"
	"github.com/Egor213/LogDesk/internal/repo"
	"github.com/Egor213/LogDesk/internal/repo/repoerrs"
	"github.com/Egor213/LogDesk/internal/repo/repotypes"
	log "github.com/sirupsen/logrus"
)

type DebugLogService struct {
	logFile   repo.LogFile
	audit     repo.Audit
	reporter  ErrorReporter
	publisher EventPublisher
	counters  *metrics.Counters
	now       func() time.Time
}

func NewDebugLogService(lf repo.LogFile, audit repo.Audit, reporter ErrorReporter, publisher EventPublisher, cnt *metrics.Counters) *DebugLogService {
	return &DebugLogService{
		logFile:   lf,
		audit:     audit,
		reporter:  reporter,
		publisher: publisher,
		counters:  cnt,
		now:       time.Now,
	}
}

// Read returns the whole debug log, or domain.EmptyLog when there is none.
func (s *DebugLogService) Read(ctx context.Context) (domain.LogContent, error) {
	data, err := s.logFile.Read(ctx)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.EmptyLog, nil
		}
		log.WithError(err).Warn("Failed to read debug log")
		return domain.EmptyLog, ErrCannotReadLog
	}

	return domain.LogContent{Exists: true, Data: data}, nil
}

// AppendTestEntry goes through the error-logging facility rather than writing
// the file, and does not check that the line landed.
func (s *DebugLogService) AppendTestEntry(ctx context.Context, meta domain.RequestMeta) domain.ActionResult {
	s.reporter.Report(TestEntry)

	result := domain.ActionResult{
		Status:  domain.StatusOK,
		Message: MsgTestEntryTriggered,
	}
	s.recordAction(ctx, domain.ActionAppendTestEntry, result, meta)

	return result
}

func (s *DebugLogService) Delete(ctx context.Context, meta domain.RequestMeta) domain.ActionResult {
	if err := s.reporter.Release(); err != nil {
		log.WithError(err).Warn("Failed to release debug log handle")
	}

	result := domain.ActionResult{
		Status:  domain.StatusOK,
		Message: MsgDeleted,
	}

	if err := s.logFile.Delete(ctx); err != nil {
		if !errors.Is(err, repoerrs.ErrNotFound) && !errors.Is(err, repoerrs.ErrNotWritable) {
			log.WithError(err).Warn("Failed to delete debug log")
		}
		result = domain.ActionResult{
			Status:  domain.StatusError,
			Message: MsgCannotDelete,
		}
	}

	s.recordAction(ctx, domain.ActionDelete, result, meta)

	return result
}

func (s *DebugLogService) History(ctx context.Context, filter repotypes.AuditFilter) ([]domain.AuditRecord, error) {
	records, err := s.audit.List(ctx, filter)
	if err != nil {
		if errors.Is(err, repoerrs.ErrAuditDisabled) {
			return nil, ErrHistoryDisabled
		}
		log.WithError(err).Warn("Failed to load action history")
		return nil, ErrCannotLoadHistory
	}

	return records, nil
}

// recordAction counts, audits and publishes an executed action. Failures here
// never change the result shown to the user.
func (s *DebugLogService) recordAction(ctx context.Context, action domain.Action, result domain.ActionResult, meta domain.RequestMeta) {
	s.counters.DebugLogActions.Inc(string(action), string(result.Status))

	fields := log.Fields{
		"action": action,
		"status": result.Status,
		"remote": meta.RemoteAddr,
	}

	_, err := s.audit.Record(ctx, &domain.AuditRecord{
		Action:     string(action),
		Status:     string(result.Status),
		Message:    result.Message,
		RemoteAddr: meta.RemoteAddr,
	})
	if err != nil && !errors.Is(err, repoerrs.ErrAuditDisabled) {
		log.WithFields(fields).WithError(err).Warn("Failed to record action in audit trail")
	}

	err = s.publisher.PublishAction(ctx, domain.ActionEvent{
		Action:     action,
		Status:     result.Status,
		Message:    result.Message,
		RemoteAddr: meta.RemoteAddr,
		Timestamp:  s.now().UTC(),
	})
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("Failed to publish action event")
	}

	log.WithFields(fields).Info("Debug log action executed")
}
