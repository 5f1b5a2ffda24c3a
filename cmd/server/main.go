package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.opentelemetry.io/otel"

	"udyam-portal/internal/audit"
	directoryhandler "udyam-portal/internal/directory/handler"
	directoryservice "udyam-portal/internal/directory/service"
	directorystore "udyam-portal/internal/directory/store"
	"udyam-portal/internal/directory/store/directory"
	"udyam-portal/internal/faq"
	faqhandler "udyam-portal/internal/faq/handler"
	grievancehandler "udyam-portal/internal/grievance/handler"
	grievanceservice "udyam-portal/internal/grievance/service"
	"udyam-portal/internal/grievance/store/ticket"
	"udyam-portal/internal/platform/config"
	"udyam-portal/internal/platform/database"
	"udyam-portal/internal/platform/health"
	"udyam-portal/internal/platform/httpserver"
	"udyam-portal/internal/platform/kafka"
	"udyam-portal/internal/platform/kafka/producer"
	"udyam-portal/internal/platform/logger"
	"udyam-portal/internal/platform/metrics"
	"udyam-portal/internal/platform/redis"
	registrationhandler "udyam-portal/internal/registration/handler"
	"udyam-portal/internal/registration/otp"
	registrationservice "udyam-portal/internal/registration/service"
	registrationstore "udyam-portal/internal/registration/store"
	"udyam-portal/internal/registration/store/session"
	"udyam-portal/internal/seeder"
	statshandler "udyam-portal/internal/stats/handler"
	statsservice "udyam-portal/internal/stats/service"
	httptransport "udyam-portal/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing udyam-portal",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"demo_otp", cfg.DemoOTP,
	)

	healthHandler := health.New(cfg.Environment)
	portalMetrics := metrics.New()

	// Optional infrastructure. Each piece degrades to in-memory when its URL
	// is not configured.
	var sessions registrationstore.SessionStore = session.NewInMemory()
	if cfg.RedisURL != "" {
		redisClient, err := redis.New(cfg.RedisURL)
		if err != nil {
			log.Error("redis init failed", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		sessions = session.NewRedis(redisClient, config.SessionRetention)
		healthHandler.RegisterCheck("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(ctx)
		})
		log.Info("redis session store enabled")
	}

	var directoryStore directorystore.Store = directory.NewInMemory()
	if cfg.DatabaseURL != "" {
		dbCfg := database.DefaultConfig()
		dbCfg.URL = cfg.DatabaseURL
		pool, err := database.New(dbCfg)
		if err != nil {
			log.Error("database init failed", "error", err)
			os.Exit(1)
		}
		if pool != nil {
			defer pool.Close()
			directoryStore = directory.NewPostgres(pool.DB())
			healthHandler.RegisterCheck("postgres", func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return pool.Health(ctx)
			})
			log.Info("postgres directory store enabled")
		}
	}

	var events *producer.Producer
	if cfg.KafkaBrokers != "" {
		var err error
		events, err = producer.New(producer.Config{
			Brokers:         cfg.KafkaBrokers,
			Retries:         3,
			DeliveryTimeout: 10 * time.Second,
		}, log)
		if err != nil {
			log.Error("kafka init failed", "error", err)
			os.Exit(1)
		}
		defer events.Close()
		kafkaHealth := kafka.NewHealthChecker(cfg.KafkaBrokers)
		healthHandler.RegisterCheck("kafka", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return kafkaHealth.Check(ctx)
		})
		log.Info("kafka event publishing enabled", "brokers", cfg.KafkaBrokers)
	}

	auditPublisher := audit.NewPublisher(audit.NewInMemoryStore(),
		audit.WithAsyncBuffer(256),
		audit.WithPublisherLogger(log),
	)
	defer auditPublisher.Close()

	ticketStore := ticket.NewInMemory()

	// Domain services.
	codes := otp.NewService(otp.NewInMemoryStore(),
		otp.WithLogger(log),
		otp.WithDemoAcceptAny(cfg.DemoOTP),
		otp.WithTTL(config.OTPChallengeTTL),
	)

	registrationOpts := []registrationservice.Option{
		registrationservice.WithLogger(log),
		registrationservice.WithAuditPublisher(auditPublisher),
		registrationservice.WithMetrics(portalMetrics),
		registrationservice.WithLatency(cfg.Latency),
	}
	grievanceOpts := []grievanceservice.Option{
		grievanceservice.WithLogger(log),
		grievanceservice.WithAuditPublisher(auditPublisher),
		grievanceservice.WithMetrics(portalMetrics),
		grievanceservice.WithLatency(cfg.Latency),
	}
	if events != nil {
		registrationOpts = append(registrationOpts,
			registrationservice.WithEvents(events, cfg.RegistrationEventTopic))
		grievanceOpts = append(grievanceOpts,
			grievanceservice.WithEvents(events, cfg.GrievanceEventTopic))
	}

	registrationSvc := registrationservice.NewService(codes, sessions,
		registrationservice.NewNumberIssuer("DL", "01"), registrationOpts...)
	directorySvc := directoryservice.NewService(directoryStore,
		directoryservice.WithLogger(log),
		directoryservice.WithTracer(otel.Tracer("udyam-portal/directory")),
		directoryservice.WithAuditPublisher(auditPublisher),
		directoryservice.WithMetrics(portalMetrics),
		directoryservice.WithLatency(cfg.Latency),
	)
	grievanceSvc := grievanceservice.NewService(ticketStore, grievanceOpts...)
	statsSvc := statsservice.NewService(directoryStore, ticketStore,
		statsservice.WithLogger(log))

	if cfg.SeedDemoData {
		if err := seeder.New(directoryStore, ticketStore, log).SeedAll(context.Background()); err != nil {
			log.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	router := httptransport.NewRouter(httptransport.Handlers{
		Registration: registrationhandler.New(registrationSvc, log),
		Directory:    directoryhandler.New(directorySvc, log),
		Grievance:    grievancehandler.New(grievanceSvc, log),
		Stats:        statshandler.New(statsSvc, log),
		FAQ:          faqhandler.New(faq.NewCatalog()),
		Health:       healthHandler,
	}, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
