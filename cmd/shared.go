package cmd

import (
	"context"
	"sync"

	"github.com/ucmcp/ucmcp/internal/logging"
	"github.com/ucmcp/ucmcp/mcp"
	mcpconfig "github.com/ucmcp/ucmcp/mcp/config"
)

var (
	cfgPath   string
	overrides Overrides

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// Overrides carries CLI-level connection flags applied on top of the loaded
// configuration file.
type Overrides struct {
	Endpoint     string
	Catalog      string
	Schema       string
	Token        string
	Verbosity    string
	LogDirectory string
}

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

func setOverrides(o Overrides) { overrides = o }

func (o Overrides) apply(cfg *mcpconfig.Config) {
	if o.Endpoint != "" {
		cfg.Endpoint = o.Endpoint
	}
	if o.Catalog != "" {
		cfg.Catalog = o.Catalog
	}
	if o.Schema != "" {
		cfg.Schema = o.Schema
	}
	if o.Token != "" {
		cfg.Token = o.Token
	}
	if o.Verbosity != "" {
		cfg.Verbosity = o.Verbosity
	}
	if o.LogDirectory != "" {
		cfg.LogDirectory = o.LogDirectory
	}
}

// serviceSingleton initialises an mcp.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		cfg := &mcpconfig.Config{}
		if cfgPath != "" {
			if cfg, svcErr = mcpconfig.Load(ctx, cfgPath); svcErr != nil {
				return
			}
		}
		overrides.apply(cfg)
		cfg.Init()
		if svcErr = logging.Setup(cfg.Verbosity, cfg.LogDirectory); svcErr != nil {
			return
		}
		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg))
	})
	return svcInst, svcErr
}
