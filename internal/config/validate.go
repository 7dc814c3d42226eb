package config

import (
	"errors"
	"fmt"
)

// Validate checks cross-field constraints that tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("auth.jwt_secret must be at least 32 characters"))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("auth.access_token_ttl must be positive"))
	}
	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, errors.New("database.max_conns must be >= min_conns"))
	}

	if c.SRS.MinEaseFactor < 1.0 {
		errs = append(errs, fmt.Errorf("srs.min_ease_factor %v too low", c.SRS.MinEaseFactor))
	}
	if c.SRS.DefaultEaseFactor < c.SRS.MinEaseFactor {
		errs = append(errs, errors.New("srs.default_ease_factor must be >= min_ease_factor"))
	}
	if c.SRS.MaxIntervalDays < 1 {
		errs = append(errs, errors.New("srs.max_interval_days must be at least 1"))
	}
	if c.SRS.MasteryThreshold < 1 {
		errs = append(errs, errors.New("srs.mastery_threshold must be at least 1"))
	}

	return errors.Join(errs...)
}
