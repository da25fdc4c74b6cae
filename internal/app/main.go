package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
	"github.com/smulube/stashboard/internal/broker"
	kafkabroker "github.com/smulube/stashboard/internal/broker/kafka"
	"github.com/smulube/stashboard/internal/cache"
	"github.com/smulube/stashboard/internal/config"
	httpv1 "github.com/smulube/stashboard/internal/controller/http/v1"
	"github.com/smulube/stashboard/internal/metrics"
	"github.com/smulube/stashboard/internal/repo"
	"github.com/smulube/stashboard/internal/service"
	errorsUtils "github.com/smulube/stashboard/pkg/errors"
	"github.com/smulube/stashboard/pkg/httpserver"
	"github.com/smulube/stashboard/pkg/logger"
	"github.com/smulube/stashboard/pkg/postgres"
)

const bootstrapTimeout = 30 * time.Second

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger has been set up")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Producer
	var brokerProducer broker.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		brokerProducer = producer
	} else {
		log.Info("No Kafka brokers configured, event notifications disabled")
	}

	// Services
	metricsCnt := metrics.New()
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       metricsCnt,
		BrokerProducer: brokerProducer,
		TrManager:      pg.TrManager,
		Cache:          cache.NewMemoryFlags(),
		Location:       loc,
	}
	services := service.NewServices(deps)

	bootstrap(services, cfg.Auth)

	// API server
	log.Infof("Starting API server...")
	log.Debugf("API server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	apiHandler.Use(metrics.Middleware())
	httpv1.ConfigureRouter(apiHandler, services, httpv1.Options{
		Location:  loc,
		RateLimit: cfg.HTTP.RateLimit,
	})
	apiServer := httpserver.New("api", apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New("metrics", metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(apiServer, metricsServer)
}

// bootstrap seeds default statuses and the admin profile.
func bootstrap(services *service.Services, auth config.Auth) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	installed, err := services.Installer.EnsureDefaults(ctx)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	log.WithField("installed", installed).Info("Default statuses checked")

	if auth.AdminToken == "" {
		log.Warn("No admin token configured, write endpoints reject every request")
		return
	}
	if err := services.Profile.EnsureProfile(ctx, auth.AdminOwner, auth.AdminToken, auth.AdminSecret); err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	log.WithField("owner", auth.AdminOwner).Info("Admin profile ready")
}

func shutdownApp(servers ...*httpserver.Server) {
	log.Info("Shutting down...")
	for _, s := range servers {
		if err := s.Shutdown(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
}
