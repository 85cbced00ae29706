package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type TimerConfig struct {
	Default time.Duration `mapstructure:"default"` // shown when the timer opens
	Sound   bool          `mapstructure:"sound"`   // sound checkbox initial state
}

type ToneConfig struct {
	Frequency float64       `mapstructure:"frequency"` // Hz
	Duration  time.Duration `mapstructure:"duration"`
	Gain      float64       `mapstructure:"gain"` // starting gain, decays to 0.01
}

type NotificationsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`  // empty discards logs
	Level string `mapstructure:"level"` // debug|info|warn|error
}

type Config struct {
	Theme         string              `mapstructure:"theme"` // dark|light
	Timer         TimerConfig         `mapstructure:"timer"`
	Tone          ToneConfig          `mapstructure:"tone"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Log           LogConfig           `mapstructure:"log"`
}

func Default() Config {
	return Config{
		Theme: "dark",
		Timer: TimerConfig{
			Default: 15 * time.Minute,
			Sound:   true,
		},
		Tone: ToneConfig{
			Frequency: 800,
			Duration:  time.Second,
			Gain:      0.3,
		},
		Notifications: NotificationsConfig{Enabled: true},
		Log:           LogConfig{Level: "info"},
	}
}

func xdgConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "folio", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "folio", "config.yaml"), nil
}

// Load reads the user's config file if there is one. FOLIO_* environment
// variables override it, e.g. FOLIO_THEME=light or FOLIO_TIMER_SOUND=false.
func Load() (Config, error) {
	path, err := xdgConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("folio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("timer.default", cfg.Timer.Default)
	v.SetDefault("timer.sound", cfg.Timer.Sound)
	v.SetDefault("tone.frequency", cfg.Tone.Frequency)
	v.SetDefault("tone.duration", cfg.Tone.Duration)
	v.SetDefault("tone.gain", cfg.Tone.Gain)
	v.SetDefault("notifications.enabled", cfg.Notifications.Enabled)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("config read: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme != "light" {
		cfg.Theme = "dark"
	}
	if cfg.Timer.Default < 0 {
		cfg.Timer.Default = 0
	}
	return cfg, nil
}

// TimerSeconds is the configured default countdown in whole seconds.
func (c Config) TimerSeconds() int {
	return int(c.Timer.Default / time.Second)
}
