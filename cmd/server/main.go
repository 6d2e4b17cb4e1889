package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cmyzu/campus-backend/internal/config"
	"github.com/cmyzu/campus-backend/internal/events"
	"github.com/cmyzu/campus-backend/internal/httpserver"
	"github.com/cmyzu/campus-backend/internal/models"
	"github.com/cmyzu/campus-backend/internal/repo"
	"github.com/cmyzu/campus-backend/internal/search"
	"github.com/cmyzu/campus-backend/internal/service"
	"github.com/cmyzu/campus-backend/internal/storage"
	"github.com/cmyzu/campus-backend/pkg/db"
	"github.com/cmyzu/campus-backend/pkg/logging"
	loggingmw "github.com/cmyzu/campus-backend/pkg/middleware/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New("campus-backend", cfg.LogLevel)
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := gdb.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	var pub events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers)
		defer producer.Close()
		pub = producer
	} else {
		logger.Warn("KAFKA_BROKERS not set, events disabled")
	}

	var newsIndex *search.NewsIndex
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		newsIndex = search.NewNewsIndex(es, cfg.ESIndex)
	} else {
		logger.Warn("ES_URL not set, news search disabled")
	}

	var signer storage.URLSigner
	if cfg.S3Bucket != "" {
		presigner, err := storage.NewPresigner(context.Background(), cfg)
		if err != nil {
			log.Fatalf("s3 init error: %v", err)
		}
		signer = presigner
	} else {
		logger.Warn("S3_BUCKET not set, file uploads disabled")
	}

	store := repo.New(gdb)
	authSvc := &service.AuthService{
		Repo:   store,
		Secret: cfg.JWTSecret,
		Events: pub,
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Auth:        &httpserver.AuthHTTP{Svc: authSvc},
		News:        &httpserver.NewsHandler{Repo: store, Index: newsIndex, Events: pub},
		LiveUpdates: &httpserver.LiveUpdateHandler{Repo: store, Events: pub},
		Hero:        &httpserver.HeroHandler{Repo: store, Signer: signer, Events: pub},
		Rankings:    &httpserver.RankingHandler{Repo: store, Events: pub},
		Reports:     &httpserver.ReportHandler{Repo: store, Signer: signer, Events: pub},
		YouTube:     &httpserver.YouTubeHandler{Repo: store, Events: pub},
		Schools:     &httpserver.SchoolHandler{Repo: store, Events: pub},
		Alumni:      &httpserver.AlumniHandler{Repo: store, Events: pub},
		Stats:       &httpserver.StatsHandler{Repo: store},
		JWTSecret:   cfg.JWTSecret,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}
}
