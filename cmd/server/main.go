package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"taskPlanner/internal/config"
	"taskPlanner/internal/db"
	grpcserver "taskPlanner/internal/grpc"
	"taskPlanner/internal/reminders"
	"taskPlanner/internal/voice"
	"taskPlanner/repository"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogging(cfg.Log)
	log.Info().Stringer("config", cfg).Msg("configuration loaded")

	// Open DB. Without DB_REQUIRED a failure leaves the service running in degraded mode.
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		if cfg.Database.Required {
			log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("open db")
		}
		log.Warn().Err(err).Str("path", cfg.Database.Path).Msg("database unavailable, serving in degraded mode")
		d = nil
	}

	users := repository.NewUserRepository(d, cfg.Auth.OwnerOpenID)
	tasks := repository.NewTaskRepository(d)
	rems := repository.NewReminderRepository(d)
	events := repository.NewCalendarRepository(d)
	logStoreState(d, users)

	deps := grpcserver.Deps{Users: users, Tasks: tasks, Reminders: rems, Events: events, Location: time.Local}
	if t := voice.NewHTTPTranscriber(cfg.Voice.APIURL, cfg.Voice.APIKey); t != nil {
		deps.Transcriber = t
	}

	dispatcher := reminders.NewDispatcher(rems, reminders.LogNotifier{}, cfg.Reminders.BatchSize)
	if err := dispatcher.Start(cfg.Reminders.Schedule); err != nil {
		log.Fatal().Err(err).Msg("start reminder dispatcher")
	}

	// Start gRPC
	shutdown, err := grpcserver.StartGRPC(cfg, deps)
	if err != nil {
		log.Fatal().Err(err).Msg("start grpc")
	}

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	dispatcher.Stop()
	closeDB(d)
}

func setupLogging(c config.LogConfig) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if c.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func logStoreState(d *sql.DB, users *repository.UserRepository) {
	if d == nil {
		return
	}
	versions, err := db.AppliedVersions(d)
	if err != nil {
		log.Warn().Err(err).Msg("read schema versions")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	n, err := users.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("count users")
		return
	}
	log.Info().Ints("migrations", versions).Int("users", n).Msg("database ready")
}

func closeDB(d *sql.DB) {
	if d == nil {
		return
	}
	if err := d.Close(); err != nil {
		log.Error().Err(err).Msg("close db")
	}
}
