package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/craftroots/marketplace/internal/config"
	"github.com/craftroots/marketplace/internal/events"
	"github.com/craftroots/marketplace/internal/httpserver"
	"github.com/craftroots/marketplace/internal/logging"
	authmw "github.com/craftroots/marketplace/internal/middleware/auth"
	loggingmw "github.com/craftroots/marketplace/internal/middleware/logging"
	"github.com/craftroots/marketplace/internal/repo"
	"github.com/craftroots/marketplace/internal/search"
	"github.com/craftroots/marketplace/internal/service"
	"github.com/craftroots/marketplace/internal/validation"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	jwtSecret := []byte(configuration.JWT_SECRET)

	var producer events.Publisher = events.Nop{}
	var kafkaProducer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		kafkaProducer = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
		producer = kafkaProducer
	}

	var indexer search.Indexer = search.NopIndexer{}
	var searchHandler *httpserver.SearchHTTP
	if configuration.ES_URL != "" {
		esClient, err := search.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		indexer = esClient
		searchHandler = &httpserver.SearchHTTP{Client: esClient}
	}

	r := repo.New(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		Auth:           authmw.New(jwtSecret),
		AuthHandler:    &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: jwtSecret}},
		ArtisanHandler: &httpserver.ArtisanHTTP{Svc: &service.ArtisanService{Repo: r}},
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: r, Producer: producer, Indexer: indexer}},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Producer: producer}},
		SearchHandler:  searchHandler,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.HTTP_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
