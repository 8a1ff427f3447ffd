package config

import (
	"os"
	"testing"
	"time"

	"github.com/itaross/rikiki-be/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("RIKIKI_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("RIKIKI_ROOM_MAX_ROOMS", "30")()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("postgres://postgres@localhost:5432/rikiki?sslmode=disable", cfg.PGDSN)
	a.Equal("debug", cfg.Log.Level)
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal(5, cfg.Room.CodeLength)
	a.Equal(30, cfg.Room.MaxRooms, "environment wins over the file")

	// values missing from the file keep their defaults
	a.Equal(1800, cfg.Room.IdleTimeoutSeconds)
	a.Equal(time.Second*5, cfg.RevealDuration())
	a.Equal("./sql", cfg.MigrationsPath)

	// ensure that it's only loaded once
	_ = os.Setenv("RIKIKI_ROOM_MAX_ROOMS", "40")
	// ensure we aren't using a pointer
	cfg.Room.MaxRooms = 1
	cfg = Instance()
	a.Equal(30, cfg.Room.MaxRooms)
}

func TestLoad_MissingFile(t *testing.T) {
	defer util.SetEnv("RIKIKI_CONFIG_FILE", "testdata/does-not-exist.yaml")()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	defaults := DefaultConfig()
	a.Equal(defaults.Room, cfg.Room)
	a.Equal(defaults.Game, cfg.Game)
	a.Equal(time.Minute*30, cfg.IdleTimeout())
}

func TestLoad_BadEnv(t *testing.T) {
	defer util.SetEnv("RIKIKI_CONFIG_FILE", "testdata/does-not-exist.yaml")()
	defer util.SetEnv("RIKIKI_ROOM_CODE_LENGTH", "four")()

	assert.Error(t, Load())
}
