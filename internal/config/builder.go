package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*Config, 0, 2)}
}

// Load builds the configuration from args (without the program name) and
// the process environment.
func Load(args []string) (*Config, error) {
	return newConfigBuilder().withFlags(args).withEnv().build()
}

// build merges sources in order; earlier sources win for fields they set.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	cfg := new(Config)
	for _, c := range b.configs {
		if err := mergo.Merge(cfg, c); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return cfg, cfg.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := env.Parse(envCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}
	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, flagCfg)
	return b
}
