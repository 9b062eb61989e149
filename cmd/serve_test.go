package cmd

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

func parseServe(t *testing.T, args []string) *Options {
	t.Helper()
	opts := &Options{}
	opts.Init("serve")
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	// Capture instead of executing; the test only cares about the bound flags.
	parser.CommandHandler = func(flags.Commander, []string) error { return nil }
	_, err := parser.ParseArgs(args)
	assert.NoError(t, err)
	return opts
}

func TestServeTransportDefaultsToStdio(t *testing.T) {
	opts := parseServe(t, []string{"serve"})
	if assert.NotNil(t, opts.Serve) {
		assert.EqualValues(t, "stdio", opts.Serve.Transport)
	}
}

func TestServeTransportHTTP(t *testing.T) {
	opts := parseServe(t, []string{"serve", "--transport=http"})
	if assert.NotNil(t, opts.Serve) {
		assert.EqualValues(t, "http", opts.Serve.Transport)
	}
}
