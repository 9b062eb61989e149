package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// DefaultLogDirectory is where log files land when no directory is
// configured.
const DefaultLogDirectory = ".mcp-server-unitycatalog"

// verbosities enumerates the accepted logging levels.
var verbosities = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "critical": true,
}

// Config carries the gateway's process configuration. It is read once at
// startup and treated as immutable afterwards.
type Config struct {
	// Endpoint is the base URL of the Unity Catalog server.
	Endpoint string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	// Catalog is the top-level container the gateway serves functions from.
	Catalog string `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	// Schema is the namespace within Catalog the gateway serves functions from.
	Schema string `yaml:"schema,omitempty" json:"schema,omitempty"`
	// Token optionally authorizes catalog API requests.
	Token string `yaml:"token,omitempty" json:"token,omitempty"`
	// Verbosity is one of debug, info, warn, error, critical.
	Verbosity string `yaml:"verbosity,omitempty" json:"verbosity,omitempty"`
	// LogDirectory receives the gateway log files.
	LogDirectory string `yaml:"log_directory,omitempty" json:"log_directory,omitempty"`
	// Server optionally customises the MCP server transport (port, auth, …).
	Server *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
}

// Load reads a YAML configuration from a local path or URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	return &cfg, nil
}

// Init applies defaults for optional fields.
func (c *Config) Init() {
	if c.Verbosity == "" {
		c.Verbosity = "warn"
	}
	if c.LogDirectory == "" {
		c.LogDirectory = DefaultLogDirectory
	}
}

// Validate fails fast on missing required fields or an unknown verbosity.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.Catalog == "" {
		return fmt.Errorf("catalog is required")
	}
	if c.Schema == "" {
		return fmt.Errorf("schema is required")
	}
	if c.Verbosity != "" && !verbosities[c.Verbosity] {
		return fmt.Errorf("unknown verbosity %q", c.Verbosity)
	}
	return nil
}
