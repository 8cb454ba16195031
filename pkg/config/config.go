// Package config holds the run options for one report invocation. There
// is no config file and no environment lookup; everything arrives via
// command-line flags.
package config

import (
	"fmt"
	"strings"
)

// Config represents the options of a single kreq run.
type Config struct {
	// Namespace scopes the pod listing to one namespace. Empty means
	// all namespaces.
	Namespace string

	// Wide enables the node resource section of the report.
	Wide bool
}

// DefaultConfig returns the default configuration: all namespaces,
// narrow output.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Namespace != strings.TrimSpace(c.Namespace) {
		return fmt.Errorf("namespace must not contain leading or trailing whitespace, got %q", c.Namespace)
	}
	if strings.ContainsAny(c.Namespace, " \t/") {
		return fmt.Errorf("namespace must be a single namespace name, got %q", c.Namespace)
	}
	return nil
}
