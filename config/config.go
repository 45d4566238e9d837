package config

import (
	"net"
	"strconv"

	env "github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	minPort = 1024
	maxPort = 65535
)

// Config holds the server settings read once at process start. Both
// implementations receive it by value; nothing reads the environment after
// Load returns.
type Config struct {
	Host        string `env:"HOST" envDefault:"localhost"`
	Port        int    `env:"PORT" envDefault:"3000"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"true"`
}

// Load reads the configuration from environment variables, falling back to
// the defaults when a variable is absent. A malformed or out-of-range PORT
// is a startup error, not a silent fallback.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	if cfg.Host == "" {
		return Config{}, errors.New("HOST must not be empty")
	}
	if cfg.Port < minPort || cfg.Port > maxPort {
		return Config{}, errors.Errorf("PORT %d outside valid range (%d-%d)", cfg.Port, minPort, maxPort)
	}
	return cfg, nil
}

// Addr returns the bind address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
