// Package config loads process-wide defaults for decoding and logging
// from YAML, the format already present (indirectly) across the pack's
// protocol codecs and elevated here to a direct dependency.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"gtpv1c/dispatch"
)

// Options is the process-wide default configuration. Every call site in
// this codec may still override Permissive explicitly per call (§5); this
// struct only supplies the default when a caller does not.
type Options struct {
	Permissive  bool   `yaml:"permissive"`
	LogLevel    string `yaml:"log_level"`
	DefaultSide string `yaml:"default_side"`
}

// Default returns the built-in configuration used when no file is
// supplied: strict mandatory-IE enforcement, info logging, SGSN as the
// default dispatch side.
func Default() Options {
	return Options{Permissive: false, LogLevel: "info", DefaultSide: "sgsn"}
}

// Load reads and parses a YAML configuration file, starting from Default
// and overwriting only the fields the file sets.
func Load(path string) (Options, error) {
	opts := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(b, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// Side resolves DefaultSide to a dispatch.Side, falling back to SGSN for
// any unrecognised value.
func (o Options) Side() dispatch.Side {
	if o.DefaultSide == "ggsn" {
		return dispatch.SideGGSN
	}
	return dispatch.SideSGSN
}
