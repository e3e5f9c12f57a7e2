package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/riordanpawley/visioncraft/internal/logger"
	"github.com/riordanpawley/visioncraft/internal/types"
	"github.com/spf13/viper"
)

// DefaultConfigName is the config file base name searched in the working
// directory and the home directory, with any extension viper supports
const DefaultConfigName = ".visioncraft"

// Validation errors
var (
	ErrInvalidMode     = errors.New("invalid initial mode")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidAvatar   = errors.New("invalid avatar settings")
)

// Config represents the full application configuration
type Config struct {
	Version int          `mapstructure:"version"`
	App     AppConfig    `mapstructure:"app"`
	Toast   ToastConfig  `mapstructure:"toast"`
	Form    FormConfig   `mapstructure:"form"`
	Avatar  AvatarConfig `mapstructure:"avatar"`
	Log     LogConfig    `mapstructure:"log"`
}

// AppConfig contains startup settings
type AppConfig struct {
	Name           string `mapstructure:"name"`
	InitialMode    string `mapstructure:"initialMode"`
	WelcomeMessage string `mapstructure:"welcomeMessage"`
	WelcomeDelayMs int    `mapstructure:"welcomeDelayMs"`
}

// ToastConfig contains notification timings
type ToastConfig struct {
	DurationMs   int `mapstructure:"durationMs"`
	EnterDelayMs int `mapstructure:"enterDelayMs"`
	ExitWindowMs int `mapstructure:"exitWindowMs"`
	MaxWidth     int `mapstructure:"maxWidth"`
}

// FormConfig contains submission settings
type FormConfig struct {
	SettleDelayMs int `mapstructure:"settleDelayMs"`
	AuthTimeoutMs int `mapstructure:"authTimeoutMs"`
}

// AvatarConfig contains the decorative avatar settings
type AvatarConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxMove     int  `mapstructure:"maxMove"`
	DivisorX    int  `mapstructure:"divisorX"`
	DivisorY    int  `mapstructure:"divisorY"`
	BlurResetMs int  `mapstructure:"blurResetMs"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		App: AppConfig{
			Name:           "VisionCraft",
			InitialMode:    types.ModeLogin.String(),
			WelcomeMessage: "Welcome to VisionCraft! Please sign in to continue.",
			WelcomeDelayMs: 500,
		},
		Toast: ToastConfig{
			DurationMs:   3000,
			EnterDelayMs: 10,
			ExitWindowMs: 300,
			MaxWidth:     40,
		},
		Form: FormConfig{
			SettleDelayMs: 2000,
			AuthTimeoutMs: 10000,
		},
		Avatar: AvatarConfig{
			Enabled:     true,
			MaxMove:     1,
			DivisorX:    8,
			DivisorY:    4,
			BlurResetMs: 100,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(os.TempDir(), "visioncraft.log"),
		},
	}
}

// LoadConfig loads configuration with priority:
// 1. the file at path, when path is not empty (it must exist)
// 2. .visioncraft.{yaml,yml,json,toml} in the working directory, then home
// 3. Defaults
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := CheckVersion(cfg.Version); err != nil {
		return nil, err
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every default so absent keys fall back to them
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", 0)

	v.SetDefault("app.name", d.App.Name)
	v.SetDefault("app.initialMode", d.App.InitialMode)
	v.SetDefault("app.welcomeMessage", d.App.WelcomeMessage)
	v.SetDefault("app.welcomeDelayMs", d.App.WelcomeDelayMs)

	v.SetDefault("toast.durationMs", d.Toast.DurationMs)
	v.SetDefault("toast.enterDelayMs", d.Toast.EnterDelayMs)
	v.SetDefault("toast.exitWindowMs", d.Toast.ExitWindowMs)
	v.SetDefault("toast.maxWidth", d.Toast.MaxWidth)

	v.SetDefault("form.settleDelayMs", d.Form.SettleDelayMs)
	v.SetDefault("form.authTimeoutMs", d.Form.AuthTimeoutMs)

	v.SetDefault("avatar.enabled", d.Avatar.Enabled)
	v.SetDefault("avatar.maxMove", d.Avatar.MaxMove)
	v.SetDefault("avatar.divisorX", d.Avatar.DivisorX)
	v.SetDefault("avatar.divisorY", d.Avatar.DivisorY)
	v.SetDefault("avatar.blurResetMs", d.Avatar.BlurResetMs)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Validate rejects settings the application cannot run with
func (c *Config) Validate() error {
	if _, ok := types.ParseFormMode(c.App.InitialMode); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.App.InitialMode)
	}

	durations := map[string]int{
		"app.welcomeDelayMs": c.App.WelcomeDelayMs,
		"toast.durationMs":   c.Toast.DurationMs,
		"toast.enterDelayMs": c.Toast.EnterDelayMs,
		"toast.exitWindowMs": c.Toast.ExitWindowMs,
		"form.settleDelayMs": c.Form.SettleDelayMs,
		"form.authTimeoutMs": c.Form.AuthTimeoutMs,
		"avatar.blurResetMs": c.Avatar.BlurResetMs,
	}
	for key, value := range durations {
		if value <= 0 {
			return fmt.Errorf("%w: %s = %d", ErrInvalidDuration, key, value)
		}
	}

	if c.Avatar.MaxMove < 0 || c.Avatar.DivisorX <= 0 || c.Avatar.DivisorY <= 0 {
		return fmt.Errorf("%w: maxMove=%d divisorX=%d divisorY=%d",
			ErrInvalidAvatar, c.Avatar.MaxMove, c.Avatar.DivisorX, c.Avatar.DivisorY)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// Mode returns the parsed initial form mode
func (c AppConfig) Mode() types.FormMode {
	mode, _ := types.ParseFormMode(c.InitialMode)
	return mode
}

// WelcomeDelay returns the welcome toast delay
func (c AppConfig) WelcomeDelay() time.Duration {
	return ms(c.WelcomeDelayMs)
}

// Duration returns the default toast lifetime
func (c ToastConfig) Duration() time.Duration {
	return ms(c.DurationMs)
}

// EnterDelay returns the wait before a toast becomes visible
func (c ToastConfig) EnterDelay() time.Duration {
	return ms(c.EnterDelayMs)
}

// ExitWindow returns how long a dismissed toast stays on screen
func (c ToastConfig) ExitWindow() time.Duration {
	return ms(c.ExitWindowMs)
}

// SettleDelay returns the wait between a submission finishing and the busy
// state clearing
func (c FormConfig) SettleDelay() time.Duration {
	return ms(c.SettleDelayMs)
}

// AuthTimeout bounds the authentication action
func (c FormConfig) AuthTimeout() time.Duration {
	return ms(c.AuthTimeoutMs)
}

// BlurReset returns the delay before the avatar eyes re-center after focus
// leaves the inputs
func (c AvatarConfig) BlurReset() time.Duration {
	return ms(c.BlurResetMs)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
