package mcp

import (
	"context"

	"github.com/phuslu/log"

	"github.com/ucmcp/ucmcp/mcp/config"
	"github.com/ucmcp/ucmcp/mcp/tool"
	"github.com/ucmcp/ucmcp/uc"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. It orchestrates the individual preparation steps so that the
// logic stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	if s.client == nil {
		var opts []uc.ClientOption
		if s.config.Token != "" {
			opts = append(opts, uc.WithToken(s.config.Token))
		}
		s.client = uc.NewClient(s.config.Endpoint, opts...)
	}

	s.codec = tool.NewCodec()
	s.registerBuiltins()

	log.Info().
		Str("endpoint", s.config.Endpoint).
		Str("catalog", s.config.Catalog).
		Str("schema", s.config.Schema).
		Str("session", s.codec.Session()).
		Msg("gateway initialised")
	return nil
}

// initDefaults applies fall-back values for optional settings that were not
// supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.Init()
}
