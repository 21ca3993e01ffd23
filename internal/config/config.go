package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/rdsctl/rdsctl/internal/rds"
	"github.com/rdsctl/rdsctl/pkg/utils"
)

// DefaultFileName is looked up in the user's home directory when no
// explicit configuration file is given.
const DefaultFileName = ".rdsctl.yaml"

// Configuration represents the complete application configuration
type Configuration struct {
	Global GlobalConfig `yaml:"global"`
	AWS    AWSConfig    `yaml:"aws"`
	Output OutputConfig `yaml:"output"`
	Paging PagingConfig `yaml:"paging"`
}

// GlobalConfig represents global application settings
type GlobalConfig struct {
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	LogFile       string `yaml:"log_file"`
	LogMaxSizeMB  int    `yaml:"log_max_size_mb"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	MetricsFile   string `yaml:"metrics_file"`
}

// AWSConfig represents the settings used to build the RDS client
type AWSConfig struct {
	Region          string        `yaml:"region"`
	Profile         string        `yaml:"profile"`
	Endpoint        string        `yaml:"endpoint"`
	AccessKeyID     string        `yaml:"access_key_id"`
	SecretAccessKey string        `yaml:"secret_access_key"`
	SessionToken    string        `yaml:"session_token"`
	MaxRetries      int           `yaml:"max_retries"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

// OutputConfig represents result rendering settings
type OutputConfig struct {
	Format   string `yaml:"format"`
	PassThru bool   `yaml:"pass_thru"`
}

// PagingConfig represents pagination settings for list operations
type PagingConfig struct {
	PageSize int32 `yaml:"page_size"`
}

// NewDefault returns a configuration with sensible defaults
func NewDefault() *Configuration {
	return &Configuration{
		Global: GlobalConfig{
			LogLevel:      "WARN",
			LogFormat:     "text",
			LogMaxSizeMB:  10,
			LogMaxBackups: 3,
		},
		AWS: AWSConfig{
			MaxRetries:     3,
			RequestTimeout: 60 * time.Second,
		},
		Output: OutputConfig{
			Format: "json",
		},
		Paging: PagingConfig{
			PageSize: 100,
		},
	}
}

// Load builds a configuration from defaults, the given file (or the default
// file when it exists) and the environment, then validates it.
func Load(filename string) (*Configuration, error) {
	cfg := NewDefault()

	explicit := filename != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			filename = filepath.Join(home, DefaultFileName)
		}
	}
	if filename != "" {
		if _, err := os.Stat(filename); err == nil || explicit {
			if err := cfg.LoadFromFile(filename); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Configuration) LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// LoadFromEnv loads configuration from environment variables
func (c *Configuration) LoadFromEnv() error {
	if val := os.Getenv("RDSCTL_LOG_LEVEL"); val != "" {
		c.Global.LogLevel = val
	}
	if val := os.Getenv("RDSCTL_LOG_FORMAT"); val != "" {
		c.Global.LogFormat = val
	}
	if val := os.Getenv("RDSCTL_LOG_FILE"); val != "" {
		c.Global.LogFile = val
	}
	if val := os.Getenv("RDSCTL_LOG_MAX_SIZE_MB"); val != "" {
		size, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid RDSCTL_LOG_MAX_SIZE_MB: %w", err)
		}
		c.Global.LogMaxSizeMB = size
	}
	if val := os.Getenv("RDSCTL_METRICS_FILE"); val != "" {
		c.Global.MetricsFile = val
	}

	// The standard AWS variables are honoured; RDSCTL_ variants win.
	for _, name := range []string{"AWS_REGION", "AWS_DEFAULT_REGION", "RDSCTL_REGION"} {
		if val := os.Getenv(name); val != "" {
			c.AWS.Region = val
		}
	}
	for _, name := range []string{"AWS_PROFILE", "RDSCTL_PROFILE"} {
		if val := os.Getenv(name); val != "" {
			c.AWS.Profile = val
		}
	}
	if val := os.Getenv("RDSCTL_ENDPOINT"); val != "" {
		c.AWS.Endpoint = val
	}
	if val := os.Getenv("RDSCTL_MAX_RETRIES"); val != "" {
		retries, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid RDSCTL_MAX_RETRIES: %w", err)
		}
		c.AWS.MaxRetries = retries
	}
	if val := os.Getenv("RDSCTL_REQUEST_TIMEOUT"); val != "" {
		timeout, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid RDSCTL_REQUEST_TIMEOUT: %w", err)
		}
		c.AWS.RequestTimeout = timeout
	}

	if val := os.Getenv("RDSCTL_OUTPUT"); val != "" {
		c.Output.Format = val
	}
	if val := os.Getenv("RDSCTL_PASS_THRU"); val != "" {
		c.Output.PassThru = strings.ToLower(val) == "true"
	}
	if val := os.Getenv("RDSCTL_PAGE_SIZE"); val != "" {
		size, err := strconv.ParseInt(val, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid RDSCTL_PAGE_SIZE: %w", err)
		}
		c.Paging.PageSize = int32(size)
	}

	return nil
}

// SaveToFile saves the configuration to a YAML file
func (c *Configuration) SaveToFile(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Configuration) Validate() error {
	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if !contains(validLogLevels, strings.ToUpper(c.Global.LogLevel)) {
		return fmt.Errorf("invalid log_level: %s (must be one of: %s)",
			c.Global.LogLevel, strings.Join(validLogLevels, ", "))
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.Global.LogFormat) {
		return fmt.Errorf("invalid log_format: %s (must be one of: %s)",
			c.Global.LogFormat, strings.Join(validLogFormats, ", "))
	}

	if c.Global.LogMaxSizeMB < 0 {
		return fmt.Errorf("log_max_size_mb cannot be negative")
	}
	if c.Global.LogMaxBackups < 0 {
		return fmt.Errorf("log_max_backups cannot be negative")
	}

	validOutputs := []string{"json", "yaml", "text"}
	if !contains(validOutputs, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			c.Output.Format, strings.Join(validOutputs, ", "))
	}

	if c.AWS.MaxRetries < 0 {
		return fmt.Errorf("max_retries cannot be negative")
	}
	if c.AWS.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout cannot be negative")
	}

	if c.Paging.PageSize < 20 || c.Paging.PageSize > 100 {
		return fmt.Errorf("page_size must be between 20 and 100, got %d", c.Paging.PageSize)
	}

	return nil
}

// LoggingConfig converts the global section into logger settings.
func (c *Configuration) LoggingConfig() utils.LoggingConfig {
	return utils.LoggingConfig{
		Level:      c.Global.LogLevel,
		Format:     c.Global.LogFormat,
		File:       c.Global.LogFile,
		MaxSizeMB:  c.Global.LogMaxSizeMB,
		MaxBackups: c.Global.LogMaxBackups,
	}
}

// ClientConfig converts the aws section into the RDS client configuration.
func (c *Configuration) ClientConfig() *rds.Config {
	return &rds.Config{
		Region:          c.AWS.Region,
		Profile:         c.AWS.Profile,
		Endpoint:        c.AWS.Endpoint,
		AccessKeyID:     c.AWS.AccessKeyID,
		SecretAccessKey: c.AWS.SecretAccessKey,
		SessionToken:    c.AWS.SessionToken,
		MaxRetries:      c.AWS.MaxRetries,
		RequestTimeout:  c.AWS.RequestTimeout,
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
