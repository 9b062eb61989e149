package mcp

import (
	"context"

	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/ucmcp/ucmcp/mcp/config"
	"github.com/ucmcp/ucmcp/mcp/tool"
	"github.com/ucmcp/ucmcp/uc"
)

// Service bundles configuration, the catalog client and the tool registries
// required by the MCP adapter. All heavy lifting during instantiation lives
// in bootstrap.go to keep this file focused on the public surface.
type Service struct {
	config *config.Config
	client uc.Client

	// codec owns the session-scoped wire-name mapping populated while
	// enumerating catalog functions and consulted at call time.
	codec *tool.Codec

	// builtins is the fixed, ordered administrative tool table; immutable
	// after init.
	builtins     []toolEntry
	builtinIndex map[string]*toolEntry
}

// Option modifies a service instance before it is initialised. Users can pass
// an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed (and rejected by validation).
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithClient overrides the default REST catalog client, primarily for tests.
func WithClient(client uc.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Config returns the effective configuration instance passed to the service
// at construction time. Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Client returns the catalog client the service dispatches remote calls to.
func (s *Service) Client() uc.Client { return s.client }

// Session returns the identifier of the wire-name mapping session.
func (s *Service) Session() string { return s.codec.Session() }

// ToolNames returns the names of all currently advertised tools. The slice
// is freshly computed and therefore safe for callers to modify.
func (s *Service) ToolNames(ctx context.Context) ([]string, error) {
	entries, err := s.tools(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names, nil
}

// ToolMetadata returns description and input schema for a named tool when
// currently advertised. The last return value is false when the tool does
// not exist.
func (s *Service) ToolMetadata(ctx context.Context, name string) (string, *mcpschema.ToolInputSchema, bool) {
	entries, err := s.tools(ctx)
	if err != nil {
		return "", nil, false
	}
	for i, e := range entries {
		if e.name == name {
			return e.description, &entries[i].inputSchema, true
		}
	}
	return "", nil, false
}
