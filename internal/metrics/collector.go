package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/rdsctl/rdsctl/pkg/errors"
)

// Collector records invocation metrics in a private prometheus registry.
// It implements adapter.Recorder. Per-operation totals are kept even when
// the registry is disabled so they can be summarized in the log.
type Collector struct {
	mu       sync.RWMutex
	config   *Config
	registry *prometheus.Registry

	// Prometheus metrics
	invocationCounter  *prometheus.CounterVec
	invocationDuration *prometheus.HistogramVec
	pageCounter        *prometheus.CounterVec
	itemCounter        *prometheus.CounterVec
	errorCounter       *prometheus.CounterVec

	// Internal tracking
	operations map[string]*OperationMetrics
}

// Config represents metrics configuration
type Config struct {
	Enabled   bool              `yaml:"enabled"`
	Namespace string            `yaml:"namespace"`
	Subsystem string            `yaml:"subsystem"`
	Labels    map[string]string `yaml:"labels"`
}

// OperationMetrics tracks metrics for one operation
type OperationMetrics struct {
	Count         int64         `json:"count"`
	Errors        int64         `json:"errors"`
	Refused       int64         `json:"refused"`
	Pages         int64         `json:"pages"`
	Items         int64         `json:"items"`
	TotalDuration time.Duration `json:"total_duration"`
	AvgDuration   time.Duration `json:"avg_duration"`
	LastOperation time.Time     `json:"last_operation"`
}

// NewCollector creates a new metrics collector
func NewCollector(config *Config) (*Collector, error) {
	if config == nil {
		config = &Config{
			Enabled:   true,
			Namespace: "rdsctl",
			Labels:    make(map[string]string),
		}
	}

	if !config.Enabled {
		return &Collector{config: config, operations: make(map[string]*OperationMetrics)}, nil
	}

	collector := &Collector{
		config:     config,
		registry:   prometheus.NewRegistry(),
		operations: make(map[string]*OperationMetrics),
	}

	collector.initMetrics()

	if err := collector.registerMetrics(); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return collector, nil
}

// Enabled reports whether the prometheus registry is recording.
func (c *Collector) Enabled() bool {
	return c.config.Enabled
}

// RecordInvocation records one finished invocation. outcome is the
// envelope kind, or "refused" when confirmation was not given.
func (c *Collector) RecordInvocation(operation, outcome string, duration time.Duration) {
	c.mu.Lock()
	op := c.operation(operation)
	op.Count++
	op.TotalDuration += duration
	op.AvgDuration = time.Duration(int64(op.TotalDuration) / op.Count)
	op.LastOperation = time.Now()
	switch outcome {
	case "error":
		op.Errors++
	case "refused":
		op.Refused++
	}
	c.mu.Unlock()

	if !c.config.Enabled {
		return
	}
	c.invocationCounter.With(prometheus.Labels{
		"operation": operation,
		"outcome":   outcome,
	}).Inc()
	c.invocationDuration.With(prometheus.Labels{
		"operation": operation,
	}).Observe(duration.Seconds())
}

// RecordPage records one fetched page of a list operation.
func (c *Collector) RecordPage(operation string, items int) {
	c.mu.Lock()
	op := c.operation(operation)
	op.Pages++
	op.Items += int64(items)
	c.mu.Unlock()

	if !c.config.Enabled {
		return
	}

	c.pageCounter.With(prometheus.Labels{"operation": operation}).Inc()
	c.itemCounter.With(prometheus.Labels{"operation": operation}).Add(float64(items))
}

// RecordError records an error by category
func (c *Collector) RecordError(operation string, err error) {
	if !c.config.Enabled || err == nil {
		return
	}

	c.errorCounter.With(prometheus.Labels{
		"operation": operation,
		"type":      classifyError(err),
	}).Inc()
}

// Snapshot returns a copy of the per-operation totals.
func (c *Collector) Snapshot() map[string]OperationMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]OperationMetrics, len(c.operations))
	for k, v := range c.operations {
		out[k] = *v
	}
	return out
}

// Operations returns the names of every recorded operation, sorted.
func (c *Collector) Operations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.operations))
	for k := range c.operations {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// WriteTextfile writes the registry in the text exposition format, for
// node_exporter's textfile collector. A disabled collector writes nothing.
func (c *Collector) WriteTextfile(path string) error {
	if !c.config.Enabled || path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}

// operation returns the tracking entry for name. c.mu must be held.
func (c *Collector) operation(name string) *OperationMetrics {
	op, ok := c.operations[name]
	if !ok {
		op = &OperationMetrics{}
		c.operations[name] = op
	}
	return op
}

func (c *Collector) initMetrics() {
	constLabels := prometheus.Labels(c.config.Labels)

	c.invocationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   c.config.Namespace,
			Subsystem:   c.config.Subsystem,
			Name:        "invocations_total",
			Help:        "Total number of operation invocations by outcome",
			ConstLabels: constLabels,
		},
		[]string{"operation", "outcome"},
	)

	c.invocationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   c.config.Namespace,
			Subsystem:   c.config.Subsystem,
			Name:        "invocation_duration_seconds",
			Help:        "Duration of operation invocations in seconds",
			Buckets:     prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
			ConstLabels: constLabels,
		},
		[]string{"operation"},
	)

	c.pageCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   c.config.Namespace,
			Subsystem:   c.config.Subsystem,
			Name:        "pages_total",
			Help:        "Total number of pages fetched by list operations",
			ConstLabels: constLabels,
		},
		[]string{"operation"},
	)

	c.itemCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   c.config.Namespace,
			Subsystem:   c.config.Subsystem,
			Name:        "items_total",
			Help:        "Total number of items returned by list operations",
			ConstLabels: constLabels,
		},
		[]string{"operation"},
	)

	c.errorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   c.config.Namespace,
			Subsystem:   c.config.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of errors by category",
			ConstLabels: constLabels,
		},
		[]string{"operation", "type"},
	)
}

func (c *Collector) registerMetrics() error {
	metrics := []prometheus.Collector{
		c.invocationCounter,
		c.invocationDuration,
		c.pageCounter,
		c.itemCounter,
		c.errorCounter,
	}

	for _, metric := range metrics {
		if err := c.registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// classifyError maps adapter errors to their category and service
// errors to "service".
func classifyError(err error) string {
	if category, ok := apperrors.CategoryOf(err); ok {
		return string(category)
	}
	if apperrors.ServiceCode(err) != "" {
		return string(apperrors.CategoryService)
	}
	return "other"
}
