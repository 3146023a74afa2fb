package config

import (
	"errors"
	"fmt"
)

var (
	ErrNoJWTSecret     = errors.New("AUTH_JWT_SECRET is required")
	ErrUnknownDriver   = errors.New("STORAGE_DRIVER must be sqlite or pgx")
	ErrEmptyDSN        = errors.New("STORAGE_DSN is required")
	ErrInvalidLogLevel = errors.New("LOG_LEVEL must be debug, info, warn or error")
)

func (c *Config) validate() error {
	var errs []error
	if c.Auth.JWTSecret == "" {
		errs = append(errs, ErrNoJWTSecret)
	}
	switch c.Storage.Driver {
	case "sqlite", "pgx":
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrUnknownDriver, c.Storage.Driver))
	}
	if c.Storage.DSN == "" {
		errs = append(errs, ErrEmptyDSN)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ErrInvalidLogLevel)
	}
	return errors.Join(errs...)
}
