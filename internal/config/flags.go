package config

import (
	"flag"
	"time"
)

// parseFlags reads the flag subset of Config.
//
//	-a        listen address host:port
//	-driver   storage driver (sqlite|pgx)
//	-d        storage DSN
//	-jwt-secret
//	-token-ttl
//	-log-level
func parseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("mindfullearner", flag.ContinueOnError)

	var address, driver, dsn, secret, level string
	var ttl time.Duration

	fs.StringVar(&address, "a", "", "Listen address host:port")
	fs.StringVar(&driver, "driver", "", "Storage driver: sqlite or pgx")
	fs.StringVar(&dsn, "d", "", "Storage DSN or SQLite file path")
	fs.StringVar(&secret, "jwt-secret", "", "JWT signing secret")
	fs.DurationVar(&ttl, "token-ttl", 0, "Token lifetime (e.g. 24h)")
	fs.StringVar(&level, "log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		Server:  Server{Address: address},
		Storage: Storage{Driver: driver, DSN: dsn},
		Auth:    Auth{JWTSecret: secret, TokenTTL: ttl},
		Log:     Log{Level: level},
	}, nil
}
