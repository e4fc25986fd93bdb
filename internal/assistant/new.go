package assistant

import "smart-task-bot/pkg/log"

type implGateway struct {
	l   log.Logger
	gen Generator
	cfg Config
}

// New creates a Gateway backed by gen.
func New(l log.Logger, gen Generator, cfg Config) Gateway {
	if cfg.Persona == "" {
		cfg.Persona = DefaultPersona
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &implGateway{l: l, gen: gen, cfg: cfg}
}
