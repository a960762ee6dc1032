package app

import (
	"os"
	"os/signal"
	"syscall"

	kafkabroker "github.com/Egor213/LogDesk/internal/broker/kafka"
	"github.com/Egor213/LogDesk/internal/config"
	v1 "github.com/Egor213/LogDesk/internal/controller/http/v1"
	"github.com/Egor213/LogDesk/internal/errorlog"
	"github.com/Egor213/LogDesk/internal/metrics"
	"github.com/Egor213/LogDesk/internal/repo"
	"github.com/Egor213/LogDesk/internal/service"
	"github.com/Egor213/LogDesk/internal/token"
	errorsUtils "github.com/Egor213/LogDesk/pkg/errors"
	"github.com/Egor213/LogDesk/pkg/httpserver"
	"github.com/Egor213/LogDesk/pkg/logger"
	"github.com/Egor213/LogDesk/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Error capture into the debug log
	facility, err := errorlog.Setup(log.StandardLogger(), errorlog.Config{
		Path:         cfg.DebugLog.Path,
		CaptureLevel: cfg.DebugLog.CaptureLevel,
	})
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer facility.Release()
	log.WithFields(log.Fields{
		"path":          facility.Path(),
		"capture_level": cfg.DebugLog.CaptureLevel,
		"display":       cfg.DisplayErrors(),
	}).Info("Error capture enabled")

	// Audit trail
	var pg *postgres.Postgres
	if cfg.PGEnabled() {
		Migrate(cfg.PG.URL)

		log.Info("Connecting to DB")
		pg, err = postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		defer pg.Close()
		log.Info("Connected to DB")
	} else {
		log.Info("PG_URL is not set, action history is disabled")
	}

	// Action events
	var publisher service.EventPublisher
	if cfg.KafkaEnabled() {
		producer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		publisher = producer
		log.Infof("Publishing debug log actions to %s", cfg.Kafka.Topic)
	}

	// Tokens
	secret := []byte(cfg.Token.Secret)
	if len(secret) == 0 {
		secret, err = token.RandomSecret()
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		log.Warn("TOKEN_SECRET is not set, action links will not survive a restart")
	}
	tokens := token.NewIssuer(secret, cfg.Token.Lifetime)

	// Repos
	repositories := repo.NewRepositories(cfg.DebugLog.Path, pg)

	// Services
	counters := metrics.New()
	services := service.NewServices(service.ServicesDependencies{
		Repos:     repositories,
		Reporter:  facility,
		Publisher: publisher,
		Counters:  counters,
	})

	// Admin HTTP server
	log.Info("Starting admin HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	handler.Debug = cfg.DisplayErrors()
	v1.NewRouter(handler, v1.RouterDeps{
		Services: services,
		Tokens:   tokens,
		Counters: counters,
	})
	httpServer := httpserver.New(handler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// Prometheus server
	log.Info("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler,
		httpserver.Port(cfg.Prometheus.Port),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Warn(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Warn(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Warn(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Warn(errorsUtils.WrapPathErr(err))
	}
}
