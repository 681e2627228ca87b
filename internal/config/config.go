// Package config loads process settings for the spacedc server and CLI.
//
// Settings come from, in increasing precedence: defaults, an optional
// spacedc.yaml, and SPACEDC_* environment variables. Command-line flags are
// bound over all three by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SPACEDC_SERVER_PORT.
const EnvPrefix = "SPACEDC"

// Settings is the resolved process configuration.
type Settings struct {
	Server  Server `mapstructure:"server"`
	Log     Log    `mapstructure:"log"`
	Project string `mapstructure:"project"`
	Limits  Limits `mapstructure:"limits"`
}

type Server struct {
	Port       int    `mapstructure:"port"`
	Host       string `mapstructure:"host"`
	TrustProxy bool   `mapstructure:"trust_proxy"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Limits bounds per-client request rates and sweep sizes.
type Limits struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	MaxSweepSteps     int     `mapstructure:"max_sweep_steps"`
}

// Addr is the listen address.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// New returns a viper instance with defaults, the config file search path
// and environment binding set up. An explicit file path overrides the
// search.
func New(file string) *viper.Viper {
	v := viper.New()
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.host", "")
	v.SetDefault("server.trust_proxy", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("project", "")
	v.SetDefault("limits.requests_per_second", 20.0)
	v.SetDefault("limits.burst", 40)
	v.SetDefault("limits.max_sweep_steps", 200)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("spacedc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and decodes settings. A missing
// spacedc.yaml in the search path is not an error; a missing explicit file
// is.
func Load(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", s.Server.Port)
	}
	if s.Limits.RequestsPerSecond <= 0 {
		return fmt.Errorf("limits.requests_per_second must be > 0 (got %g)", s.Limits.RequestsPerSecond)
	}
	if s.Limits.Burst < 1 {
		return fmt.Errorf("limits.burst must be >= 1 (got %d)", s.Limits.Burst)
	}
	if s.Limits.MaxSweepSteps < 2 {
		return fmt.Errorf("limits.max_sweep_steps must be >= 2 (got %d)", s.Limits.MaxSweepSteps)
	}
	return nil
}
