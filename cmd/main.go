package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cueclub/tournament-system/brackets"
	"github.com/cueclub/tournament-system/config"
	"github.com/cueclub/tournament-system/db"
	"github.com/cueclub/tournament-system/handlers"
	"github.com/cueclub/tournament-system/repositories"
	"github.com/cueclub/tournament-system/routes"
	"github.com/cueclub/tournament-system/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database, err := db.Connect(cfg.DatabaseURL, 10*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close()
	logger.Info("database connection established")

	hub := brackets.NewHub()
	go hub.Run()

	playerRepo := repositories.NewPostgresPlayerRepository(database)
	tournamentRepo := repositories.NewPostgresTournamentRepository(database)
	participantRepo := repositories.NewPostgresParticipantRepository(database)
	matchRepo := repositories.NewPostgresMatchRepository(database)
	gameRepo := repositories.NewPostgresGameRepository(database)

	locks := services.NewTournamentLocker()

	playerService := services.NewPlayerService(playerRepo)
	ratingService := services.NewRatingService(database, gameRepo, playerRepo, cfg.EloKFactor, logger)
	tournamentService := services.NewTournamentService(database, tournamentRepo, participantRepo, matchRepo, playerRepo, locks, hub, logger)
	matchService := services.NewMatchService(database, matchRepo, tournamentRepo, participantRepo, locks, hub, logger)

	router := routes.New(routes.Dependencies{
		PlayerHandler:      handlers.NewPlayerHandler(playerService, ratingService),
		TournamentHandler:  handlers.NewTournamentHandler(tournamentService),
		MatchHandler:       handlers.NewMatchHandler(matchService),
		WebsocketHandler:   handlers.NewWebsocketHandler(hub, tournamentService),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down server", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", slog.Int("port", cfg.ServerPort))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
