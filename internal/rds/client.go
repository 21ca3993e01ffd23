package rds

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"golang.org/x/sync/singleflight"
)

// ClientManager lazily creates RDS clients and caches them for reuse
// across invocations, one per region/profile pair.
type ClientManager struct {
	config *Config
	logger *slog.Logger

	group   singleflight.Group
	mu      sync.RWMutex
	clients map[string]*rds.Client
	region  string

	// loadConfig is config.LoadDefaultConfig outside tests.
	loadConfig func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error)
}

// NewClientManager creates a new RDS client manager. No AWS configuration is
// loaded until the first client is requested.
func NewClientManager(cfg *Config, logger *slog.Logger) *ClientManager {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ClientManager{
		config:     cfg,
		logger:     logger.With("component", "rds-client"),
		clients:    make(map[string]*rds.Client),
		loadConfig: config.LoadDefaultConfig,
	}
}

// ClientFor returns the cached client for region/profile, creating it on
// first use. Concurrent first callers share a single creation.
func (cm *ClientManager) ClientFor(ctx context.Context, region, profile string) (*rds.Client, error) {
	key := region + "|" + profile

	cm.mu.RLock()
	client, ok := cm.clients[key]
	cm.mu.RUnlock()
	if ok {
		return client, nil
	}

	v, err, _ := cm.group.Do(key, func() (interface{}, error) {
		cm.mu.RLock()
		existing, ok := cm.clients[key]
		cm.mu.RUnlock()
		if ok {
			return existing, nil
		}

		created, err := cm.newClient(ctx, region, profile)
		if err != nil {
			return nil, err
		}

		cm.mu.Lock()
		cm.clients[key] = created
		cm.mu.Unlock()
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*rds.Client), nil
}

func (cm *ClientManager) newClient(ctx context.Context, region, profile string) (*rds.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRetryMaxAttempts(cm.config.MaxRetries + 1),
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if cm.config.HasStaticCredentials() {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cm.config.AccessKeyID, cm.config.SecretAccessKey, cm.config.SessionToken)))
	}
	if cm.config.RequestTimeout > 0 {
		opts = append(opts, config.WithHTTPClient(
			awshttp.NewBuildableClient().WithTimeout(cm.config.RequestTimeout)))
	}

	awsCfg, err := cm.loadConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := rds.NewFromConfig(awsCfg, func(o *rds.Options) {
		if cm.config.Endpoint != "" {
			o.BaseEndpoint = aws.String(cm.config.Endpoint)
		}
	})

	if region == cm.config.Region && profile == cm.config.Profile {
		cm.mu.Lock()
		cm.region = awsCfg.Region
		cm.mu.Unlock()
	}

	cm.logger.Debug("RDS client created",
		"region", awsCfg.Region,
		"profile", profile,
		"endpoint", cm.config.Endpoint)

	return client, nil
}

// Diagnostics describes the default client target for error messages. The
// region is the one the SDK resolved once the default client exists.
func (cm *ClientManager) Diagnostics() Diagnostics {
	region := cm.config.Region
	cm.mu.RLock()
	if cm.region != "" {
		region = cm.region
	}
	cm.mu.RUnlock()

	endpoint := cm.config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint(region)
	}
	return Diagnostics{
		Region:   region,
		Profile:  cm.config.Profile,
		Endpoint: endpoint,
	}
}

// Cached returns the number of clients created so far.
func (cm *ClientManager) Cached() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}

// API returns the client for region/profile as an API. Empty values fall
// back to the configured defaults.
func (cm *ClientManager) API(ctx context.Context, region, profile string) (API, error) {
	if region == "" {
		region = cm.config.Region
	}
	if profile == "" {
		profile = cm.config.Profile
	}
	client, err := cm.ClientFor(ctx, region, profile)
	if err != nil {
		return nil, err
	}
	return client, nil
}
