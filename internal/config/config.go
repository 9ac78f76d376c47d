// Package config loads sepdash configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Worker  WorkerConfig
	Cache   CacheConfig
	History HistoryConfig
	UI      UIConfig
}

// WorkerConfig describes how jobs are launched.
type WorkerConfig struct {
	Program        string   `mapstructure:"program"`         // interpreter running the entry scripts
	InferenceEntry string   `mapstructure:"inference_entry"` // overrides the inference screen's entry script
	TrainEntry     string   `mapstructure:"train_entry"`     // overrides the training screen's entry script
	Terminal       []string `mapstructure:"terminal"`        // optional terminal wrapper argv, best-effort
}

// CacheConfig locates the persisted field cache.
type CacheConfig struct {
	Path string
}

// HistoryConfig locates the run journal.
type HistoryConfig struct {
	Path    string
	Enabled bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string
	Debug    bool
}

// Load reads configuration from file and env. Env overrides use prefix
// SEPDASH_; SEPDASH_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "sepdash")
	v.SetDefault("worker.program", "python")
	v.SetDefault("worker.inference_entry", "")
	v.SetDefault("worker.train_entry", "")
	v.SetDefault("worker.terminal", []string{})
	v.SetDefault("cache.path", filepath.Join(dataDir, "fields.cache"))
	v.SetDefault("history.path", filepath.Join(dataDir, "history.db"))
	v.SetDefault("history.enabled", true)
	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SEPDASH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sepdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SEPDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
