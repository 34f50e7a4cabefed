// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rezonia/einvoice/internal/capability"
	"github.com/rezonia/einvoice/internal/logger"
	"github.com/rezonia/einvoice/internal/model"
)

// EnvPrefix prefixes every environment key, e.g. EINVOICE_PROFILE
const EnvPrefix = "EINVOICE"

// Config groups the application settings
type Config struct {
	Codec CodecConfig
	Log   logger.Config
	HTTP  HTTPConfig
}

// CodecConfig holds the default output triple for encode and convert
type CodecConfig struct {
	Version model.Version
	Profile model.Profile
	Dialect model.Dialect
}

// HTTPConfig holds the API server settings
type HTTPConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "2.3")
	v.SetDefault("profile", "Comfort")
	v.SetDefault("dialect", "CII")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_output", "stderr")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("http_read_timeout", 30*time.Second)
	v.SetDefault("http_write_timeout", 2*time.Minute)
	v.SetDefault("debug", false)
}

// Load reads envFiles (".env" when none are given) into the process
// environment, then builds the configuration from EINVOICE_* variables.
// Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	version, err := model.ParseVersion(v.GetString("version"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	profile, err := model.ParseProfile(v.GetString("profile"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	dialect, err := model.ParseDialect(v.GetString("dialect"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := capability.Supported(version, profile, dialect); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &Config{
		Codec: CodecConfig{Version: version, Profile: profile, Dialect: dialect},
		Log: logger.Config{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
			Output: v.GetString("log_output"),
		},
		HTTP: HTTPConfig{
			Addr:         v.GetString("http_addr"),
			ReadTimeout:  v.GetDuration("http_read_timeout"),
			WriteTimeout: v.GetDuration("http_write_timeout"),
			Debug:        v.GetBool("debug"),
		},
	}, nil
}
