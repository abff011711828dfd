package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting taskdeck reads at startup
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"` // SQLite file
	Slot string `mapstructure:"slot"` // slot holding the task list
}

type UIConfig struct {
	Theme         string        `mapstructure:"theme"` // light or dark
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Dir returns ~/.taskdeck
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck"), nil
}

// Load reads the optional config file, then TASKDECK_* environment overrides.
// An empty path looks for config.yaml in ~/.taskdeck; a missing file is fine.
func Load(path string) (Config, error) {
	v := viper.New()

	dir, err := Dir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to locate home directory: %w", err)
	}
	setDefaults(v, dir)

	v.SetEnvPrefix("TASKDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the default location is optional
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("storage.path", filepath.Join(dir, "taskdeck.db"))
	v.SetDefault("storage.slot", "tasks")
	v.SetDefault("ui.theme", "light")
	v.SetDefault("ui.toast_duration", 3*time.Second)
	v.SetDefault("log.file", filepath.Join(dir, "logs", "taskdeck.log"))
	v.SetDefault("log.level", "info")
}

// Validate rejects settings the rest of the program cannot work with
func (c Config) Validate() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage.path must not be empty")
	}
	if strings.TrimSpace(c.Storage.Slot) == "" {
		return fmt.Errorf("storage.slot must not be empty")
	}
	switch c.UI.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("ui.theme must be light or dark, got %q", c.UI.Theme)
	}
	if c.UI.ToastDuration <= 0 {
		return fmt.Errorf("ui.toast_duration must be positive")
	}
	return nil
}
