package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/windwords/windwords/pkg/model"
)

const (
	DefaultConfigPath = "/etc/windwords/config"
	ConfigFileName    = "windwords.yml"
)

// Valid log levels accepted by WINDWORDS_LOG_LEVEL.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all windwords configuration settings
type Config struct {
	// MongoUsername is the username of the connecting database user
	MongoUsername string `yaml:"mongo_username" json:"mongo_username"`

	// MongoPassword is the password of the connecting database user
	MongoPassword string `yaml:"mongo_password" json:"mongo_password"`

	// MongoCluster is the Atlas cluster name to connect to
	MongoCluster string `yaml:"mongo_cluster" json:"mongo_cluster"`

	// Database is the database name
	Database string `yaml:"database" json:"database"`

	// GoogleMapsAPIKey is the key used for Places and Geocoding requests
	GoogleMapsAPIKey string `yaml:"google_maps_api_key" json:"google_maps_api_key"`

	// BindAddress is the HTTP server bind address
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server listen port
	Port int `yaml:"port" json:"port"`

	// PopulateWeeks is the trailing window, in weeks, for populate runs
	PopulateWeeks int `yaml:"populate_weeks" json:"populate_weeks"`

	// CaptionLanguages is the caption track preference order
	CaptionLanguages []string `yaml:"caption_languages" json:"caption_languages"`

	// LogLevel is the logging verbosity
	LogLevel string `yaml:"log_level" json:"log_level"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Database:         model.DefaultDatabase,
		BindAddress:      "0.0.0.0",
		Port:             8000,
		PopulateWeeks:    2,
		CaptionLanguages: []string{"a.en", "en"},
		LogLevel:         "info",
		sources:          make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("WINDWORDS_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"mongo_username", "mongo_password", "mongo_cluster", "database",
		"google_maps_api_key", "bind_address", "port", "populate_weeks",
		"caption_languages", "log_level",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.MongoUsername != "" {
		c.MongoUsername = file.MongoUsername
		c.sources["mongo_username"] = "file"
	}
	if file.MongoPassword != "" {
		c.MongoPassword = file.MongoPassword
		c.sources["mongo_password"] = "file"
	}
	if file.MongoCluster != "" {
		c.MongoCluster = file.MongoCluster
		c.sources["mongo_cluster"] = "file"
	}
	if file.Database != "" {
		c.Database = file.Database
		c.sources["database"] = "file"
	}
	if file.GoogleMapsAPIKey != "" {
		c.GoogleMapsAPIKey = file.GoogleMapsAPIKey
		c.sources["google_maps_api_key"] = "file"
	}
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.PopulateWeeks != 0 {
		c.PopulateWeeks = file.PopulateWeeks
		c.sources["populate_weeks"] = "file"
	}
	if len(file.CaptionLanguages) > 0 {
		c.CaptionLanguages = file.CaptionLanguages
		c.sources["caption_languages"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("MONGO_USERNAME"); val != "" {
		c.MongoUsername = val
		c.sources["mongo_username"] = "environment"
	}
	if val := os.Getenv("MONGO_PASSWORD"); val != "" {
		c.MongoPassword = val
		c.sources["mongo_password"] = "environment"
	}
	if val := os.Getenv("MONGO_CLUSTER"); val != "" {
		c.MongoCluster = val
		c.sources["mongo_cluster"] = "environment"
	}
	if val := os.Getenv("WINDWORDS_DATABASE"); val != "" {
		c.Database = val
		c.sources["database"] = "environment"
	}
	if val := os.Getenv("GOOGLE_MAPS_API_KEY"); val != "" {
		c.GoogleMapsAPIKey = val
		c.sources["google_maps_api_key"] = "environment"
	}
	if val := os.Getenv("WINDWORDS_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("WINDWORDS_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("WINDWORDS_POPULATE_WEEKS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.PopulateWeeks = i
			c.sources["populate_weeks"] = "environment"
		}
	}
	if val := os.Getenv("WINDWORDS_CAPTION_LANGUAGES"); val != "" {
		c.CaptionLanguages = splitAndTrim(val)
		c.sources["caption_languages"] = "environment"
	}
	if val := os.Getenv("WINDWORDS_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// PopulateWindow returns the populate window as a duration
func (c *Config) PopulateWindow() time.Duration {
	return time.Duration(c.PopulateWeeks) * 7 * 24 * time.Hour
}

// Addr returns the HTTP server listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PopulateWeeks <= 0 {
		return fmt.Errorf("invalid populate_weeks: %d", c.PopulateWeeks)
	}

	valid := false
	for _, level := range ValidLogLevels {
		if c.LogLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. Secret values are redacted.
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "mongo_username", Value: c.MongoUsername, Source: c.Source("mongo_username")},
		{Name: "mongo_password", Value: redact(c.MongoPassword), Source: c.Source("mongo_password")},
		{Name: "mongo_cluster", Value: c.MongoCluster, Source: c.Source("mongo_cluster")},
		{Name: "database", Value: c.Database, Source: c.Source("database")},
		{Name: "google_maps_api_key", Value: redact(c.GoogleMapsAPIKey), Source: c.Source("google_maps_api_key")},
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "populate_weeks", Value: strconv.Itoa(c.PopulateWeeks), Source: c.Source("populate_weeks")},
		{Name: "caption_languages", Value: strings.Join(c.CaptionLanguages, ","), Source: c.Source("caption_languages")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
