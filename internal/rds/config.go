package rds

import (
	"fmt"
	"time"
)

// Config represents RDS client configuration
type Config struct {
	Region          string `yaml:"region"`
	Profile         string `yaml:"profile"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`

	// Retries are performed by the SDK; the adapter itself never retries.
	MaxRetries     int           `yaml:"max_retries"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:     3,
		RequestTimeout: 60 * time.Second,
	}
}

// HasStaticCredentials reports whether an access key pair is configured.
func (c *Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// Diagnostics describes the client target. It is used only to format
// error messages.
type Diagnostics struct {
	Region   string
	Profile  string
	Endpoint string
}

// String renders the diagnostics for inclusion in error messages.
func (d Diagnostics) String() string {
	if d.Profile != "" {
		return fmt.Sprintf("endpoint %s (region %s, profile %s)", d.Endpoint, d.Region, d.Profile)
	}
	return fmt.Sprintf("endpoint %s (region %s)", d.Endpoint, d.Region)
}

// DefaultEndpoint returns the public RDS endpoint for a region.
func DefaultEndpoint(region string) string {
	if region == "" {
		return "rds.<unresolved-region>.amazonaws.com"
	}
	return fmt.Sprintf("https://rds.%s.amazonaws.com", region)
}
