package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Keys shared by the environment (TODO_ prefix, dots become underscores)
// and the optional config file.
const (
	keyDBDir                = "db.dir"
	keyDBFilename           = "db.filename"
	keyDBQueryTimeout       = "db.query_timeout"
	keyDBDirPermissions     = "db.dir_permissions"
	keyDisplayClearScreen   = "display.clear_screen"
	keyTitleMaxLength       = "validation.title_max_length"
	keyDescriptionMaxLength = "validation.description_max_length"
	keyAppVerbose           = "app.verbose"

	envPrefix = "TODO"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithConfigFile makes Load read the given YAML/TOML/JSON file before the environment
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, when one was given
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	v := l.newViper()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", l.configFile, err)
		}
	}

	if err := l.apply(v); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	c := l.config
	v.SetDefault(keyDBDir, c.Database.Dir)
	v.SetDefault(keyDBFilename, c.Database.Filename)
	v.SetDefault(keyDBQueryTimeout, c.Database.QueryTimeout)
	v.SetDefault(keyDBDirPermissions, fmt.Sprintf("%04o", c.Database.DirPermissions))
	v.SetDefault(keyDisplayClearScreen, c.Display.ClearScreen)
	v.SetDefault(keyTitleMaxLength, c.Validation.TitleMaxLength)
	v.SetDefault(keyDescriptionMaxLength, c.Validation.DescriptionMaxLength)
	v.SetDefault(keyAppVerbose, c.Application.Verbose)
	return v
}

func (l *Loader) apply(v *viper.Viper) error {
	c := l.config

	c.Database.Dir = v.GetString(keyDBDir)
	c.Database.Filename = v.GetString(keyDBFilename)

	timeout, err := parseDuration(v.Get(keyDBQueryTimeout))
	if err != nil {
		return &ConfigError{Field: "database.query_timeout", Message: err.Error()}
	}
	c.Database.QueryTimeout = timeout

	perms, err := parsePermissions(v.Get(keyDBDirPermissions))
	if err != nil {
		return &ConfigError{Field: "database.dir_permissions", Message: err.Error()}
	}
	c.Database.DirPermissions = perms

	c.Display.ClearScreen = v.GetBool(keyDisplayClearScreen)
	c.Validation.TitleMaxLength = v.GetInt(keyTitleMaxLength)
	c.Validation.DescriptionMaxLength = v.GetInt(keyDescriptionMaxLength)
	c.Application.Verbose = v.GetBool(keyAppVerbose)

	return nil
}

// parseDuration accepts a time.Duration or a duration string such as "5s"
func parseDuration(value interface{}) (time.Duration, error) {
	switch d := value.(type) {
	case time.Duration:
		return d, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", d)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("invalid duration %v", value)
	}
}

// parsePermissions accepts an octal string ("0700") or a number already decoded by a config file
func parsePermissions(value interface{}) (uint32, error) {
	switch p := value.(type) {
	case string:
		parsed, err := strconv.ParseUint(p, 8, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid octal permissions %q", p)
		}
		return uint32(parsed), nil
	case int:
		return uint32(p), nil
	case int64:
		return uint32(p), nil
	case uint64:
		return uint32(p), nil
	case float64:
		return uint32(p), nil
	default:
		return 0, fmt.Errorf("invalid permissions %v", value)
	}
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	ClearScreen    *bool
	Verbose        *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.ClearScreen != nil {
		config.Display.ClearScreen = *overrides.ClearScreen
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
