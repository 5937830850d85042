// File: config.go
// Title: Configuration Loader
// Description: TOML/YAML configuration with dot-notation access,
//              environment overrides and defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/texttype/core/error"
	mdwerrors "github.com/msto63/texttype/core/errors"
	mdwlog "github.com/msto63/texttype/core/log"
	"github.com/msto63/texttype/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, nested maps allowed
	Logger    *mdwlog.Logger         // Receives load diagnostics (default: none)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options.
// Failures are always returned; they are also logged only when
// options.Logger is set.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	logger := options.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}
	logger = logger.WithName("config")

	if stringx.IsBlank(filePath) {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "load", filePath, "non-empty file path")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerrors.NotFound(mdwerrors.ModuleConfig, "load", filePath)
		}
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Message("failed to read config file").
			Cause(err).
			Code(mdwerror.CodeConfigError).
			Severity(mdwerror.SeverityHigh).
			Detail("filePath", filePath).
			Build()
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		wrapped := mdwerror.Wrap(err, "failed to parse config file").
			WithDetail("filePath", filePath)
		logger.LogError(wrapped)
		return nil, wrapped
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	logger.Debug("configuration loaded", mdwlog.Fields{
		"path":   filePath,
		"format": format.String(),
		"keys":   len(data),
	})

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}

	return &Config{data: data, format: format}, nil
}

// New returns an empty configuration, optionally seeded with data
func New(data map[string]interface{}) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Config{data: data, format: FormatTOML}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleConfig, "parse", format.String(), "valid TOML document", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleConfig, "parse", format.String(), "valid YAML document", err)
		}
	default:
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "parse", format.String(), "toml or yaml format")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data; nested maps are merged recursively
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range data {
		dataMap, dataIsMap := v.(map[string]interface{})
		defMap, defIsMap := result[k].(map[string]interface{})
		if dataIsMap && defIsMap {
			result[k] = mergeDefaults(dataMap, defMap)
			continue
		}
		result[k] = v
	}

	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue, ok := c.lookupEnv(key); ok {
		return envValue
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if envValue, ok := c.lookupEnv(key); ok {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if envValue, ok := c.lookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	if _, ok := c.lookupEnv(key); ok {
		return true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// getValue retrieves a configuration value by dot-notation key; caller must hold mu
func (c *Config) getValue(key string) interface{} {
	current := c.data

	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// lookupEnv returns the environment override for key, only when a prefix is configured
func (c *Config) lookupEnv(key string) (string, bool) {
	c.mu.RLock()
	prefix := c.envPrefix
	c.mu.RUnlock()

	if prefix == "" {
		return "", false
	}
	return os.LookupEnv(formatEnvKey(prefix, key))
}

// formatEnvKey converts a config key to environment variable format:
// textvalue.separator with prefix texttype -> TEXTTYPE_TEXTVALUE_SEPARATOR
func formatEnvKey(prefix, key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(prefix) + "_" + envKey
}

// deepCopyMap creates a deep copy of a map
func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}

	return dst
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format.String())}

	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}

	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}

	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}
