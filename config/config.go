// Package config loads the aerich project configuration from a YAML or
// TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/LanceMoe/aerich/dialect"
)

// DefaultLocation is the migration directory used when none is configured.
const DefaultLocation = "./migrations"

// Config is the project configuration of the migration tool.
type Config struct {
	// Dialect selects the DDL templates and type maps. One of
	// sql, mysql, postgres, sqlite.
	Dialect string `yaml:"dialect" toml:"dialect"`
	// DSN is the connection string used when applying migrations.
	// Generation alone does not need it.
	DSN string `yaml:"dsn" toml:"dsn"`
	// Location is the migration directory.
	Location string `yaml:"location" toml:"location"`
}

// Load reads a configuration file. The format is chosen by extension:
// .yaml/.yml or .toml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("aerich: config: %w", err)
	}
	c := &Config{}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("aerich: config: parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("aerich: config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("aerich: config: unsupported file extension %q", ext)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Dialect == "" {
		c.Dialect = dialect.SQL
	}
	if !dialect.Valid(c.Dialect) {
		return fmt.Errorf("aerich: config: unsupported dialect %q", c.Dialect)
	}
	if c.Location == "" {
		c.Location = DefaultLocation
	}
	return nil
}
