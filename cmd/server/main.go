package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"vistoforms/internal/form/events"
	formhandler "vistoforms/internal/form/handler"
	formservice "vistoforms/internal/form/service"
	formstore "vistoforms/internal/form/store"
	"vistoforms/internal/form/wizard"
	"vistoforms/internal/jwtauth"
	"vistoforms/internal/platform/config"
	"vistoforms/internal/platform/httpserver"
	"vistoforms/internal/platform/logger"
	"vistoforms/internal/platform/metrics"
	platformredis "vistoforms/internal/platform/redis"
)

// main wires dependencies and owns the server lifecycle. Business logic
// lives in the internal/form packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	var st formstore.Store
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("failed to open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := formstore.NewPostgres(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Error("failed to migrate form store", "error", err)
			os.Exit(1)
		}
		st = pg
		log.Info("using postgres form store")
	} else {
		st = formstore.NewInMemoryStore()
		log.Warn("no postgres DSN configured, using in-memory form store")
	}

	var redirects wizard.RedirectStore = wizard.NewInMemoryRedirectStore()
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		redirects = wizard.NewRedisRedirectStore(redisClient.Client, cfg.RedirectTTL)
		log.Info("using redis redirect store")
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			os.Exit(1)
		}
		publisher = kafka
		log.Info("publishing step submissions to kafka", "topic", cfg.KafkaTopic)
	}
	defer publisher.Close()

	svc := formservice.New(st, redirects, publisher, m, log)
	validator := jwtauth.NewValidator(cfg.JWTSigningKey)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())
	formhandler.New(svc, log, m, validator).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting vistoforms", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
