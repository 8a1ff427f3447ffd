package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/itaross/rikiki-be/internal/config"
	"github.com/itaross/rikiki-be/internal/mux"
	"github.com/itaross/rikiki-be/pkg/archive"
	"github.com/itaross/rikiki-be/pkg/db"
	"github.com/itaross/rikiki-be/pkg/room"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	recorder, dbh := setupRecorder(cfg)
	if dbh != nil {
		defer dbh.Close()
	}

	pitBoss := room.NewPitBoss(room.Options{
		CodeLength:     cfg.Room.CodeLength,
		IdleTimeout:    cfg.IdleTimeout(),
		SweepInterval:  room.DefaultOptions().SweepInterval,
		MaxRooms:       cfg.Room.MaxRooms,
		RevealDuration: cfg.RevealDuration(),
	}, recorder)
	pitBoss.StartShift()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, pitBoss, recorder))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("could not listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("could not shut down cleanly")
	}

	pitBoss.EndShift()
}

// setupRecorder archives to Postgres when a DSN is configured, otherwise to memory
func setupRecorder(cfg config.Config) (archive.Recorder, *sql.DB) {
	if cfg.PGDSN == "" {
		logrus.Warn("no pgDsn configured, finished games are kept in memory")
		return archive.NewMemory(), nil
	}

	dbh, err := db.Open(cfg.PGDSN)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}

	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	return archive.NewPostgres(dbh), dbh
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
