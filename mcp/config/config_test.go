package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `endpoint: http://localhost:8080
catalog: main
schema: demo
verbosity: debug
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(context.Background(), path)
	assert.NoError(t, err)
	assert.EqualValues(t, "http://localhost:8080", cfg.Endpoint)
	assert.EqualValues(t, "main", cfg.Catalog)
	assert.EqualValues(t, "demo", cfg.Schema)
	assert.NoError(t, cfg.Validate())
}

func TestInitDefaults(t *testing.T) {
	cfg := &Config{Endpoint: "http://localhost:8080", Catalog: "main", Schema: "demo"}
	cfg.Init()
	assert.EqualValues(t, "warn", cfg.Verbosity)
	assert.EqualValues(t, DefaultLogDirectory, cfg.LogDirectory)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"complete", Config{Endpoint: "http://x", Catalog: "c", Schema: "s"}, true},
		{"missing endpoint", Config{Catalog: "c", Schema: "s"}, false},
		{"missing catalog", Config{Endpoint: "http://x", Schema: "s"}, false},
		{"missing schema", Config{Endpoint: "http://x", Catalog: "c"}, false},
		{"bad verbosity", Config{Endpoint: "http://x", Catalog: "c", Schema: "s", Verbosity: "loud"}, false},
	}
	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.ok {
			assert.NoError(t, err, tc.name)
		} else {
			assert.Error(t, err, tc.name)
		}
	}
}
