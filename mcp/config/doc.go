// Package config defines the YAML configuration model that can be passed to
// the gateway on startup as well as helper functions to load and validate the
// configuration from a local path or URL.
package config
