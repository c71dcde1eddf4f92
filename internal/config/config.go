package config

import (
	"os"

	"fivecarddraw-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the five-card draw server
type Config struct {
	loaded bool

	SessionsPath string `yaml:"sessionsPath" envconfig:"sessions_path"`

	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	Game struct {
		Seats         int `yaml:"seats"`
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingStack int `yaml:"startingStack" envconfig:"starting_stack"`
	} `yaml:"game"`
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.SessionsPath = "sessions.db"
	c.Game.Seats = 4
	c.Game.SmallBlind = 25
	c.Game.BigBlind = 50
	c.Game.StartingStack = 1000
	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and the environment still apply
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("FCD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("fcd", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
