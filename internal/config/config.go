package config

import (
	"camelcards/internal/util"
	"camelcards/pkg/camelcards"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the camel cards solver
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Rules camelcards.Rules `yaml:"rules" envconfig:"rules"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		Rules: camelcards.Standard,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
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
// A missing config file is not an error, the defaults and the environment are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("CAMELCARDS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("camelcards", &cfg); err != nil {
		return err
	}

	rules, err := camelcards.RulesFromString(string(cfg.Rules))
	if err != nil {
		return err
	}

	cfg.Rules = rules
	cfg.loaded = true
	config = cfg
	return nil
}
