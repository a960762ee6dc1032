package v1

import (
	"net/http"

	"github.com/Egor213/LogDesk/internal/metrics"
	"github.com/Egor213/LogDesk/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const AdminPath = "/admin/debug-log"

type RouterDeps struct {
	Services *service.Services
	Tokens   TokenIssuer
	Counters *metrics.Counters
	// Registerer receives the HTTP request metrics. Defaults to the global one.
	Registerer prometheus.Registerer
}

func NewRouter(handler *echo.Echo, deps RouterDeps) {
	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	handler.HideBanner = true
	handler.Use(middleware.Recover())
	handler.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":  v.Method,
				"path":    v.URIPath,
				"status":  v.Status,
				"latency": v.Latency.String(),
				"remote":  v.RemoteIP,
			}).Info("request")
			return nil
		},
	}))
	handler.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "logdesk",
		Registerer: registerer,
	}))

	handler.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	admin := handler.Group(AdminPath)
	newAdminRoutes(admin, AdminPath, deps.Services.DebugLog, deps.Tokens, deps.Counters)
}
