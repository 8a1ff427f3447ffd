package main

import (
	"context"
	"time"

	"github.com/itaross/rikiki-be/internal/config"
	"github.com/itaross/rikiki-be/pkg/db"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Instance()
	if cfg.PGDSN == "" {
		logrus.Fatal("pgDsn is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	dbh, err := db.WaitFor(ctx, cfg.PGDSN, time.Millisecond*500)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}
	defer dbh.Close()

	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	logrus.Info("migrations complete")
}
