// Package config loads trainer configuration from defaults, an optional
// YAML file, and TENPAI_-prefixed environment variables, in that order of
// precedence (lowest first).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type TrainerConf struct {
	Mode        string `mapstructure:"mode"`
	Rounds      int    `mapstructure:"rounds"`
	DisplaySize int    `mapstructure:"displaySize"`
	Pattern     string `mapstructure:"pattern"` // empty = random each round
}

type GeneratorConf struct {
	Seed        int64 `mapstructure:"seed"`
	MaxAttempts int   `mapstructure:"maxAttempts"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type StoreConf struct {
	Path string `mapstructure:"path"`
}

type Config struct {
	Trainer   TrainerConf   `mapstructure:"trainer"`
	Generator GeneratorConf `mapstructure:"generator"`
	Log       LogConf       `mapstructure:"log"`
	Store     StoreConf     `mapstructure:"store"`
}

var v = viper.New()

func setDefaults() {
	v.SetDefault("trainer.mode", "standard")
	v.SetDefault("trainer.rounds", 10)
	v.SetDefault("trainer.displaySize", 13)
	v.SetDefault("trainer.pattern", "")
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.maxAttempts", 50)
	v.SetDefault("log.level", "info")
	v.SetDefault("store.path", defaultStorePath())
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "scores.db"
	}
	return filepath.Join(home, ".tenpai", "scores.db")
}

// Load reads configuration. An empty file path means defaults plus
// environment only; a named file that is missing is an error.
func Load(file string) (*Config, error) {
	v = viper.New()
	setDefaults()
	v.SetEnvPrefix("TENPAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Watch re-delivers the configuration whenever the loaded file changes on
// disk. It is a no-op when no file was loaded.
func Watch(onChange func(*Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err == nil {
			onChange(&cfg)
		}
	})
	v.WatchConfig()
}
