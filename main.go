package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"

	"Cinerank/config"
	"Cinerank/database"
	"Cinerank/handlers"
	"Cinerank/logger"
	"Cinerank/middleware"
	"Cinerank/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	log.Printf("Initializing Cinerank components...")

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := services.NewMovieStore(db)
	tmdb := services.NewTMDBClient(cfg)
	sessions := services.NewSessions(cfg)

	h, err := handlers.New(cfg, store, tmdb, sessions)
	if err != nil {
		log.Fatal("Failed to initialize handlers:", err)
	}

	// Form-submission integrity: every POST carries a token derived from
	// the session secret.
	protect := csrf.Protect(
		[]byte(cfg.SessionSecret),
		csrf.Secure(cfg.Environment == "production"),
		csrf.FieldName("csrf_token"),
	)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:    addr,
		Handler: middleware.Logging(protect(h.Routes())),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Cinerank is starting on %s (env: %s)", addr, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
