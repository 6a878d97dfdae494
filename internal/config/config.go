// Package config reads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/pacam/formrelay/pkg/logger"
	"github.com/pacam/formrelay/pkg/mailer/resend"
)

// Config is the complete service configuration.
type Config struct {
	APIPrefix       string         `env:"API_PREFIX" envDefault:"/api"`
	CORSOrigins     []string       `env:"CORS_ORIGIN" envDefault:"https://www.pacassetmanagement.com" envSeparator:","`
	AdminDomains    []string       `env:"ADMIN_EMAIL_DOMAINS" envSeparator:","`
	Port            int            `env:"PORT" envDefault:"3001"`
	BodyLimit       int64          `env:"BODY_LIMIT_BYTES" envDefault:"52428800"`
	RequestTimeout  time.Duration  `env:"REQUEST_TIMEOUT" envDefault:"0s"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RateLimitRPS    float64        `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst  int            `env:"RATE_LIMIT_BURST" envDefault:"5"`
	TrustedProxies  []netip.Prefix `env:"TRUSTED_PROXIES" envSeparator:","`
	MailDryRun      bool           `env:"MAIL_DRY_RUN" envDefault:"false"`
	UniqueRefs      bool           `env:"REFERENCE_UNIQUE_SUFFIX" envDefault:"false"`

	Resend resend.Config
	Log    logger.Config
}

// Load reads an optional .env file, then parses the environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse(env.Options{})
}

// Parse builds a Config from the environment described by opts.
func Parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// DryRun reports whether mail is logged instead of sent.
func (c *Config) DryRun() bool {
	return c.MailDryRun || !c.Resend.Enabled()
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.BodyLimit <= 0 {
		errs = append(errs, errors.New("BODY_LIMIT_BYTES must be positive"))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must not be negative"))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if c.APIPrefix != "" && !strings.HasPrefix(c.APIPrefix, "/") {
		c.APIPrefix = "/" + c.APIPrefix
	}
	c.APIPrefix = strings.TrimSuffix(c.APIPrefix, "/")
	return errors.Join(errs...)
}
