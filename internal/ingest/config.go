// Package ingest drives the builder from an external record source: a
// config file names the output table, and a newline-delimited stream of
// field values feeds rows into the core page engine in order.
package ingest

import (
	"io"

	"gopkg.in/yaml.v2"
)

// Config describes a single build job: the table to create and where its
// rows come from.
type Config struct {
	// TableName is copied into the schema row as-is.
	TableName string `yaml:"table_name"`

	// SQL is the opaque CREATE TABLE text copied into the schema row.
	SQL string `yaml:"sql"`

	// Columns names the ordered columns each input record supplies, used
	// only to decide how many fields a CSV-like row should carry.
	Columns []string `yaml:"columns"`

	// OutputPath is where the finished database file is written.
	OutputPath string `yaml:"output_path"`
}

// DecodeConfig reads a YAML-encoded Config from r.
func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
