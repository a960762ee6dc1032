package v1

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	logginghelper "github.com/Egor213/LogDesk/internal/controller/common/logging"
	"github.com/Egor213/LogDesk/internal/controller/http/validators"
	"github.com/Egor213/LogDesk/internal/domain"
	"github.com/Egor213/LogDesk/internal/metrics"
	"github.com/Egor213/LogDesk/internal/repo/repotypes"
	"github.com/Egor213/LogDesk/internal/service"
	"github.com/labstack/echo/v4"
)

type TokenIssuer interface {
	Generate(action string) string
	Verify(action, token string) bool
}

type actionFunc func(ctx context.Context, meta domain.RequestMeta) domain.ActionResult

type adminRoutes struct {
	debugLog service.DebugLog
	tokens   TokenIssuer
	counters *metrics.Counters
	basePath string
	actions  map[domain.Action]actionFunc
}

func newAdminRoutes(g *echo.Group, basePath string, debugLog service.DebugLog, tokens TokenIssuer, counters *metrics.Counters) {
	r := &adminRoutes{
		debugLog: debugLog,
		tokens:   tokens,
		counters: counters,
		basePath: basePath,
	}
	r.actions = map[domain.Action]actionFunc{
		domain.ActionDelete:          debugLog.Delete,
		domain.ActionAppendTestEntry: debugLog.AppendTestEntry,
	}

	g.Match([]string{http.MethodGet, http.MethodPost}, "", r.screen)
	g.GET("/history", r.history)
}

// screen serves the debug log page. A mutating intent runs only after its
// token checks out; a bad token ends the request before anything is read.
func (r *adminRoutes) screen(c echo.Context) error {
	ctx := c.Request().Context()
	meta := requestMeta(c)

	intent := validators.ParseIntent(c.FormValue)
	logginghelper.LogIntent(intent.Action, meta)

	var result *domain.ActionResult

	if intent.Mutating() {
		if !r.tokens.Verify(string(intent.Action), intent.Token) {
			r.counters.AdminRequests.Inc(string(intent.Action), "rejected")
			logginghelper.LogRejected(intent.Action, meta)
			return c.String(http.StatusForbidden, service.MsgActionFailed)
		}

		res := r.actions[intent.Action](ctx, meta)
		logginghelper.LogResult(intent.Action, res)
		result = &res
	}

	content, readErr := r.debugLog.Read(ctx)

	view := newScreenView(
		r.basePath,
		content,
		readErr != nil,
		result,
		r.tokens.Generate(string(domain.ActionDelete)),
		r.tokens.Generate(string(domain.ActionAppendTestEntry)),
	)

	var buf bytes.Buffer
	if err := renderScreen(&buf, view); err != nil {
		logginghelper.LogRenderError(err)
		r.counters.AdminRequests.Inc(string(intent.Action), "failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}

	r.counters.AdminRequests.Inc(string(intent.Action), "ok")

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

type historyResponse struct {
	Actions []historyItem `json:"actions"`
}

type historyItem struct {
	ID        int       `json:"id"`
	Action    string    `json:"action"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *adminRoutes) history(c echo.Context) error {
	filter := repotypes.AuditFilter{
		Action: c.QueryParam("action"),
		Status: c.QueryParam("status"),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	records, err := r.debugLog.History(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}

	resp := historyResponse{Actions: make([]historyItem, 0, len(records))}
	for _, rec := range records {
		resp.Actions = append(resp.Actions, historyItem{
			ID:        rec.ID,
			Action:    rec.Action,
			Status:    rec.Status,
			Message:   rec.Message,
			CreatedAt: rec.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func requestMeta(c echo.Context) domain.RequestMeta {
	return domain.RequestMeta{
		RemoteAddr: c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
	}
}
