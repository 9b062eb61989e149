package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server that exposes the configured catalog's
// functions as tools.  The default transport is stdio, which is how MCP
// clients usually spawn the gateway; --transport=http starts an HTTP listener
// instead.  The server options (port, auth, …) are taken from the same config
// file that the service uses.
type ServeCmd struct {
	Transport string `long:"transport" description:"Transport to serve on" choice:"stdio" choice:"http" default:"stdio"`
}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	var srvOpts *mcp.ServerOptions
	if cfg := svc.Config(); cfg != nil {
		srvOpts = cfg.Server
	}

	mcpServer, err := mcp.NewServer(svc.NewHandler, srvOpts)
	if err != nil {
		return err
	}

	if c.Transport == "stdio" {
		// stdout carries protocol frames; logging already goes to stderr.
		return mcpServer.Stdio(context.Background()).ListenAndServe()
	}

	httpSrv := mcpServer.HTTP(context.Background(), "")
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err.Error() != "http: Server closed" {
			log.Fatalf("http server: %v", err)
		}
	}()

	fmt.Printf("MCP server listening on %s\n", httpSrv.Addr)

	// Wait for SIGINT/SIGTERM
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	fmt.Println("shutting down…")
	return httpSrv.Close()
}
