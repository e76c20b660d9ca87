package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeOption adjusts YAML decoding.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	allowUnknown bool
}

// AllowUnknownFields accepts documents carrying fields this package
// does not know instead of rejecting them. Useful when documents are
// shared with other tooling.
func AllowUnknownFields() DecodeOption {
	return func(c *decodeConfig) {
		c.allowUnknown = true
	}
}

// Load reads and parses a document YAML file. Returns an error if the
// file does not exist, is malformed, contains unknown fields (typos),
// or is missing required fields.
func Load(path string, opts ...DecodeOption) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}
	defer f.Close()
	return Decode(f, opts...)
}

// Decode parses a document from YAML. Unknown fields are rejected
// unless AllowUnknownFields is given, so typos like "case:" for
// "cases:" fail loudly.
func Decode(r io.Reader, opts ...DecodeOption) (*Document, error) {
	cfg := decodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(!cfg.allowUnknown)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
