package config

import (
	"path/filepath"
	"time"
)

// Config holds all configuration options for the to-do application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TODO_DB_DIR"`
	Filename       string        `env:"TODO_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TODO_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TODO_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds terminal display configuration
type DisplayConfig struct {
	ClearScreen bool `env:"TODO_DISPLAY_CLEAR_SCREEN"`
}

// ValidationConfig holds input validation rules
type ValidationConfig struct {
	TitleMaxLength       int `env:"TODO_VALIDATION_TITLE_MAX_LENGTH"`
	DescriptionMaxLength int `env:"TODO_VALIDATION_DESCRIPTION_MAX_LENGTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with defaults. The database is
// entries.db in the working directory.
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            ".",
			Filename:       "entries.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			ClearScreen: true,
		},
		Validation: ValidationConfig{
			TitleMaxLength:       255,
			DescriptionMaxLength: 1000,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.DirPermissions == 0 || c.Database.DirPermissions > 0777 {
		return &ConfigError{Field: "database.dir_permissions", Message: "directory permissions must be between 0001 and 0777"}
	}

	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
