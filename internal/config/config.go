// Package config assembles server configuration from command-line flags and
// environment variables. Flags take precedence; env defaults fill the rest.
package config

import "time"

type Config struct {
	Server  Server  `envPrefix:"SERVER_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Auth    Auth    `envPrefix:"AUTH_"`
	App     App     `envPrefix:"APP_"`
	Log     Log     `envPrefix:"LOG_"`
	Metrics Metrics `envPrefix:"METRICS_"`
}

type Server struct {
	// Address is host:port to listen on.
	Address         string        `env:"ADDRESS" envDefault:":3001"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

type Storage struct {
	// Driver is "sqlite" or "pgx".
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"mindful_learner.db"`
	Seed   bool   `env:"SEED" envDefault:"true"`
}

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	// AllowUserIDHeader accepts the User-Id header and userId query
	// parameter as identity when no bearer token is sent.
	AllowUserIDHeader bool `env:"ALLOW_USER_ID_HEADER" envDefault:"true"`
}

type App struct {
	// EncryptionKey seals journal text at rest when set.
	EncryptionKey string `env:"ENCRYPTION_KEY"`
}

type Log struct {
	Level string `env:"LEVEL" envDefault:"info"`
	// Mode is "production" (JSON) or "development" (console).
	Mode string `env:"MODE" envDefault:"production"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}
