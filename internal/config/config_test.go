package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Test Constants
const (
	TestDebugLevel = "DEBUG"
	TestRegion     = "eu-west-1"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	if cfg.Global.LogLevel != "WARN" {
		t.Errorf("Expected LogLevel to be WARN, got %s", cfg.Global.LogLevel)
	}
	if cfg.Global.LogFormat != "text" {
		t.Errorf("Expected LogFormat to be text, got %s", cfg.Global.LogFormat)
	}
	if cfg.AWS.MaxRetries != 3 {
		t.Errorf("Expected MaxRetries to be 3, got %d", cfg.AWS.MaxRetries)
	}
	if cfg.AWS.RequestTimeout != 60*time.Second {
		t.Errorf("Expected RequestTimeout to be 60s, got %v", cfg.AWS.RequestTimeout)
	}
	if cfg.Global.LogMaxSizeMB != 10 || cfg.Global.LogMaxBackups != 3 {
		t.Errorf("Unexpected log rotation defaults: %+v", cfg.Global)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Output.Format)
	}
	if cfg.Output.PassThru {
		t.Error("Expected PassThru to be disabled by default")
	}
	if cfg.Paging.PageSize != 100 {
		t.Errorf("Expected PageSize to be 100, got %d", cfg.Paging.PageSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  func() *Configuration
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  NewDefault,
			wantErr: false,
		},
		{
			name: "lowercase log level accepted",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Global.LogLevel = "debug"
				return cfg
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Global.LogLevel = "INVALID"
				return cfg
			},
			wantErr: true,
			errMsg:  "invalid log_level",
		},
		{
			name: "invalid log format",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Global.LogFormat = "xml"
				return cfg
			},
			wantErr: true,
			errMsg:  "invalid log_format",
		},
		{
			name: "invalid output format",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Output.Format = "csv"
				return cfg
			},
			wantErr: true,
			errMsg:  "invalid output format",
		},
		{
			name: "negative log size",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Global.LogMaxSizeMB = -1
				return cfg
			},
			wantErr: true,
			errMsg:  "log_max_size_mb cannot be negative",
		},
		{
			name: "negative retries",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.AWS.MaxRetries = -1
				return cfg
			},
			wantErr: true,
			errMsg:  "max_retries cannot be negative",
		},
		{
			name: "page size too small",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Paging.PageSize = 10
				return cfg
			},
			wantErr: true,
			errMsg:  "page_size must be between 20 and 100",
		},
		{
			name: "page size too large",
			config: func() *Configuration {
				cfg := NewDefault()
				cfg.Paging.PageSize = 101
				return cfg
			},
			wantErr: true,
			errMsg:  "page_size must be between 20 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %v, want error containing %v", err, tt.errMsg)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
global:
  log_level: DEBUG
  log_format: json

aws:
  region: eu-west-1
  profile: ops
  max_retries: 5
  request_timeout: 90s

output:
  format: yaml
  pass_thru: true

paging:
  page_size: 50
`

	if err := os.WriteFile(configFile, []byte(configContent), 0600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	cfg := NewDefault()
	if err := cfg.LoadFromFile(configFile); err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Global.LogLevel != TestDebugLevel {
		t.Errorf("Expected LogLevel to be DEBUG, got %s", cfg.Global.LogLevel)
	}
	if cfg.Global.LogFormat != "json" {
		t.Errorf("Expected LogFormat to be json, got %s", cfg.Global.LogFormat)
	}
	if cfg.AWS.Region != TestRegion {
		t.Errorf("Expected Region to be %s, got %s", TestRegion, cfg.AWS.Region)
	}
	if cfg.AWS.Profile != "ops" {
		t.Errorf("Expected Profile to be ops, got %s", cfg.AWS.Profile)
	}
	if cfg.AWS.MaxRetries != 5 {
		t.Errorf("Expected MaxRetries to be 5, got %d", cfg.AWS.MaxRetries)
	}
	if cfg.AWS.RequestTimeout != 90*time.Second {
		t.Errorf("Expected RequestTimeout to be 90s, got %v", cfg.AWS.RequestTimeout)
	}
	if cfg.Output.Format != "yaml" || !cfg.Output.PassThru {
		t.Errorf("Unexpected output section: %+v", cfg.Output)
	}
	if cfg.Paging.PageSize != 50 {
		t.Errorf("Expected PageSize to be 50, got %d", cfg.Paging.PageSize)
	}
}

func TestLoadFromFileNonExistent(t *testing.T) {
	cfg := NewDefault()
	if err := cfg.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error when loading non-existent config file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RDSCTL_LOG_LEVEL", TestDebugLevel)
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("RDSCTL_REGION", TestRegion)
	t.Setenv("AWS_PROFILE", "dev")
	t.Setenv("RDSCTL_ENDPOINT", "http://localhost:4566")
	t.Setenv("RDSCTL_MAX_RETRIES", "7")
	t.Setenv("RDSCTL_REQUEST_TIMEOUT", "2m")
	t.Setenv("RDSCTL_OUTPUT", "text")
	t.Setenv("RDSCTL_PASS_THRU", "TRUE")
	t.Setenv("RDSCTL_PAGE_SIZE", "20")
	t.Setenv("RDSCTL_LOG_MAX_SIZE_MB", "25")

	cfg := NewDefault()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Global.LogLevel != TestDebugLevel {
		t.Errorf("Expected LogLevel DEBUG, got %s", cfg.Global.LogLevel)
	}
	if cfg.AWS.Region != TestRegion {
		t.Errorf("RDSCTL_REGION should win over AWS_REGION, got %s", cfg.AWS.Region)
	}
	if cfg.AWS.Profile != "dev" {
		t.Errorf("Expected Profile dev, got %s", cfg.AWS.Profile)
	}
	if cfg.AWS.Endpoint != "http://localhost:4566" {
		t.Errorf("Expected endpoint override, got %s", cfg.AWS.Endpoint)
	}
	if cfg.AWS.MaxRetries != 7 {
		t.Errorf("Expected MaxRetries 7, got %d", cfg.AWS.MaxRetries)
	}
	if cfg.AWS.RequestTimeout != 2*time.Minute {
		t.Errorf("Expected RequestTimeout 2m, got %v", cfg.AWS.RequestTimeout)
	}
	if cfg.Output.Format != "text" || !cfg.Output.PassThru {
		t.Errorf("Unexpected output section: %+v", cfg.Output)
	}
	if cfg.Paging.PageSize != 20 {
		t.Errorf("Expected PageSize 20, got %d", cfg.Paging.PageSize)
	}
	if cfg.Global.LogMaxSizeMB != 25 {
		t.Errorf("Expected LogMaxSizeMB 25, got %d", cfg.Global.LogMaxSizeMB)
	}
}

func TestLoadFromEnvInvalidNumber(t *testing.T) {
	t.Setenv("RDSCTL_MAX_RETRIES", "many")

	cfg := NewDefault()
	if err := cfg.LoadFromEnv(); err == nil {
		t.Error("Expected error for non-numeric RDSCTL_MAX_RETRIES")
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error when an explicit config file does not exist")
	}
}

func TestLoadWithoutDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected defaults when no file exists, got format %s", cfg.Output.Format)
	}
}

func TestSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nested", "dir", "config.yaml")

	cfg := NewDefault()
	cfg.AWS.Region = TestRegion
	cfg.Output.Format = "yaml"

	if err := cfg.SaveToFile(configFile); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded := NewDefault()
	if err := loaded.LoadFromFile(configFile); err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.AWS.Region != TestRegion {
		t.Errorf("Expected Region %s after round trip, got %s", TestRegion, loaded.AWS.Region)
	}
	if loaded.Output.Format != "yaml" {
		t.Errorf("Expected output format yaml after round trip, got %s", loaded.Output.Format)
	}
}

func TestClientConfig(t *testing.T) {
	cfg := NewDefault()
	cfg.AWS.Region = TestRegion
	cfg.AWS.Endpoint = "http://localhost:4566"
	cfg.AWS.MaxRetries = 9

	clientCfg := cfg.ClientConfig()
	if clientCfg.Region != TestRegion {
		t.Errorf("Region = %s, want %s", clientCfg.Region, TestRegion)
	}
	if clientCfg.Endpoint != "http://localhost:4566" {
		t.Errorf("Endpoint = %s", clientCfg.Endpoint)
	}
	if clientCfg.MaxRetries != 9 {
		t.Errorf("MaxRetries = %d, want 9", clientCfg.MaxRetries)
	}
}

func TestLoggingConfig(t *testing.T) {
	cfg := NewDefault()
	cfg.Global.LogLevel = TestDebugLevel
	cfg.Global.LogFile = "/var/log/rdsctl.log"

	logCfg := cfg.LoggingConfig()
	if logCfg.Level != TestDebugLevel || logCfg.File != "/var/log/rdsctl.log" {
		t.Errorf("Unexpected logging config: %+v", logCfg)
	}
	if logCfg.MaxSizeMB != 10 || logCfg.MaxBackups != 3 {
		t.Errorf("Rotation settings not carried over: %+v", logCfg)
	}
}
