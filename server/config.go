package server

import (
	"github.com/hypertodo/hypertodo/db"
	"github.com/hypertodo/hypertodo/web"
)

// Config holds server configuration
type Config struct {
	// Server infrastructure (immutable, requires restart)
	Port int
	Host string
	Env  string // "development" or "production"

	// Paths (immutable, requires restart)
	DatabasePath string

	// Templates: optional on-disk override, watched in development
	TemplateDir string

	// Debug settings
	DBLogQueries bool
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// ToDBConfig converts server config to database config
func (c *Config) ToDBConfig() db.Config {
	return db.Config{
		Path:            c.DatabasePath,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 0, // Never expire
		LogQueries:      c.DBLogQueries,
	}
}

// ToWebConfig converts server config to renderer config
func (c *Config) ToWebConfig() web.Config {
	return web.Config{
		TemplateDir: c.TemplateDir,
	}
}
