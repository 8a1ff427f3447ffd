package config

import (
	"os"
	"sync"
	"time"

	"github.com/itaross/rikiki-be/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Rikiki server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		// RevealSeconds is how long clients show the dealt cards
		RevealSeconds int `yaml:"revealSeconds" envconfig:"reveal_seconds"`
	} `yaml:"game"`
	Room struct {
		CodeLength         int `yaml:"codeLength" envconfig:"code_length"`
		IdleTimeoutSeconds int `yaml:"idleTimeoutSeconds" envconfig:"idle_timeout_seconds"`
		MaxRooms           int `yaml:"maxRooms" envconfig:"max_rooms"`
	} `yaml:"room"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.MigrationsPath = "./sql"
	cfg.Log.Level = "info"
	cfg.Game.RevealSeconds = 5
	cfg.Room.CodeLength = 4
	cfg.Room.IdleTimeoutSeconds = 1800
	cfg.Room.MaxRooms = 1000

	return cfg
}

// RevealDuration returns Game.RevealSeconds as a duration
func (c Config) RevealDuration() time.Duration {
	return time.Duration(c.Game.RevealSeconds) * time.Second
}

// IdleTimeout returns Room.IdleTimeoutSeconds as a duration
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Room.IdleTimeoutSeconds) * time.Second
}

var (
	config     Config
	configLock sync.Mutex
)

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	configLock.Lock()
	defer configLock.Unlock()

	if !config.loaded {
		cfg, err := load()
		if err != nil {
			panic(err)
		}

		config = cfg
	}

	return config
}

// Load will (re)load the configuration
func Load() error {
	cfg, err := load()
	if err != nil {
		return err
	}

	configLock.Lock()
	config = cfg
	configLock.Unlock()

	return nil
}

// load reads the config file over the defaults, then the environment over both
// A missing config file is not an error.
func load() (Config, error) {
	cfg := DefaultConfig()

	configFile := util.Getenv("RIKIKI_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if err := envconfig.Process("rikiki", &cfg); err != nil {
		return Config{}, err
	}

	cfg.loaded = true
	return cfg, nil
}
