package logginghelper

import (
	"github.com/Egor213/LogDesk/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Admin-side events are logged below ERROR so they never reach the captured
// debug log.

func LogIntent(action domain.Action, meta domain.RequestMeta) {
	log.WithFields(log.Fields{
		"intent": action,
		"remote": meta.RemoteAddr,
	}).Debug("Received debug log admin request")
}

func LogRejected(action domain.Action, meta domain.RequestMeta) {
	log.WithFields(log.Fields{
		"intent":     action,
		"remote":     meta.RemoteAddr,
		"user_agent": meta.UserAgent,
	}).Warn("Rejected debug log action: invalid token")
}

func LogResult(action domain.Action, result domain.ActionResult) {
	log.WithFields(log.Fields{
		"intent": action,
		"status": result.Status,
	}).Info("Debug log action finished")
}

func LogRenderError(err error) {
	log.WithError(err).Warn("Failed to render debug log screen")
}
