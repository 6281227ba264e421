// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"vietcards/internal/config"
	"vietcards/internal/handlers"
	"vietcards/internal/middleware"
	"vietcards/internal/repository"
	"vietcards/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Bootstrap logger until the configured one is ready.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		tempLogger.Info("Loaded environment from .env file")
	}

	cfg, err := config.Load("configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency injection.
	cardRepo := repository.NewGormCardRepository()

	cardService := service.NewCardService(db, cardRepo)
	quizService := service.NewQuizService(db, cardRepo)
	topicService := service.NewTopicService(db, cardRepo, cfg.App.VocabDir)
	authService, err := service.NewAuthService(cfg, service.NewMemorySessionStore())
	if err != nil {
		slog.Error("Error initializing auth service", slog.Any("error", err))
		os.Exit(1)
	}

	cardHandler := handlers.NewCardHandler(cardService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)
	topicHandler := handlers.NewTopicHandler(topicService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)

	// Router setup.
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Post("/auth/login", authHandler.PostLogin)
		r.Post("/auth/logout", authHandler.PostLogout)

		// Everything else sits behind the (optional) session check.
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuthMiddleware(authService))

			r.Route("/cards", func(r chi.Router) {
				r.Post("/", cardHandler.PostCard)
				r.Get("/", cardHandler.GetCards)
				r.Delete("/", cardHandler.DeleteCards)
				r.Get("/random", cardHandler.GetRandomCard)
				r.Post("/reset_mastery", cardHandler.PostResetMastery)
			})

			r.Route("/quiz", func(r chi.Router) {
				r.Post("/check", quizHandler.PostCheck)
				r.Post("/give_up", quizHandler.PostGiveUp)
				r.Post("/hint", quizHandler.PostHint)
			})

			r.Route("/topics", func(r chi.Router) {
				r.Get("/", topicHandler.GetTopics)
				r.Post("/load", topicHandler.PostLoad)
				r.Post("/sync", topicHandler.PostSync)
			})

			r.Get("/categories", cardHandler.GetCategories)
			r.Get("/stats", cardHandler.GetStats)
		})
	})

	// Health check with a DB ping.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
