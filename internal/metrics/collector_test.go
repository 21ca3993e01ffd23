package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/smithy-go"

	apperrors "github.com/rdsctl/rdsctl/pkg/errors"
)

func TestNewCollector(t *testing.T) {
	t.Parallel()

	t.Run("with valid config", func(t *testing.T) {
		config := &Config{
			Enabled:   true,
			Namespace: "rdsctl",
			Subsystem: "test",
		}
		collector, err := NewCollector(config)
		if err != nil {
			t.Fatalf("NewCollector() error = %v, want nil", err)
		}
		if collector.config != config {
			t.Error("collector.config does not match input config")
		}
		if collector.registry == nil {
			t.Error("collector.registry is nil")
		}
		if collector.operations == nil {
			t.Error("collector.operations map is nil")
		}
	})

	t.Run("with nil config uses defaults", func(t *testing.T) {
		collector, err := NewCollector(nil)
		if err != nil {
			t.Fatalf("NewCollector(nil) error = %v, want nil", err)
		}
		if !collector.Enabled() {
			t.Error("default collector should be enabled")
		}
		if collector.config.Namespace != "rdsctl" {
			t.Errorf("default namespace = %q, want %q", collector.config.Namespace, "rdsctl")
		}
	})

	t.Run("with disabled config", func(t *testing.T) {
		collector, err := NewCollector(&Config{Enabled: false})
		if err != nil {
			t.Fatalf("NewCollector() error = %v, want nil", err)
		}
		if collector.registry != nil {
			t.Error("disabled collector should not have registry")
		}
		if collector.Enabled() {
			t.Error("disabled collector reports enabled")
		}
	})
}

func TestRecordInvocation(t *testing.T) {
	t.Parallel()

	t.Run("tracks outcomes", func(t *testing.T) {
		collector, err := NewCollector(nil)
		if err != nil {
			t.Fatalf("NewCollector() error = %v", err)
		}

		collector.RecordInvocation("DescribeDBInstances", "result", 100*time.Millisecond)
		collector.RecordInvocation("DescribeDBInstances", "result", 300*time.Millisecond)
		collector.RecordInvocation("DescribeDBInstances", "error", 200*time.Millisecond)
		collector.RecordInvocation("DeleteDBInstance", "refused", time.Millisecond)

		snap := collector.Snapshot()
		op := snap["DescribeDBInstances"]
		if op.Count != 3 {
			t.Errorf("op.Count = %d, want 3", op.Count)
		}
		if op.Errors != 1 {
			t.Errorf("op.Errors = %d, want 1", op.Errors)
		}
		if op.AvgDuration != 200*time.Millisecond {
			t.Errorf("op.AvgDuration = %v, want 200ms", op.AvgDuration)
		}
		if snap["DeleteDBInstance"].Refused != 1 {
			t.Errorf("refused = %d, want 1", snap["DeleteDBInstance"].Refused)
		}

		names := collector.Operations()
		if len(names) != 2 || names[0] != "DeleteDBInstance" {
			t.Errorf("Operations() = %v", names)
		}
	})

	t.Run("disabled collector still keeps totals", func(t *testing.T) {
		collector, _ := NewCollector(&Config{Enabled: false})

		collector.RecordInvocation("DescribeDBInstances", "result", time.Second)
		collector.RecordPage("DescribeDBInstances", 10)
		collector.RecordError("DescribeDBInstances", errors.New("boom"))

		op := collector.Snapshot()["DescribeDBInstances"]
		if op.Count != 1 || op.Items != 10 {
			t.Errorf("Count = %d, Items = %d, want 1 and 10", op.Count, op.Items)
		}
	})
}

func TestRecordPage(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector(nil)
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}

	collector.RecordPage("DescribeDBSnapshots", 100)
	collector.RecordPage("DescribeDBSnapshots", 42)

	op := collector.Snapshot()["DescribeDBSnapshots"]
	if op.Pages != 2 {
		t.Errorf("op.Pages = %d, want 2", op.Pages)
	}
	if op.Items != 142 {
		t.Errorf("op.Items = %d, want 142", op.Items)
	}
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"adapter error", apperrors.NewError(apperrors.ErrCodeNameResolution, "x"), "connection"},
		{"wrapped adapter error", fmt.Errorf("run: %w", apperrors.NewError(apperrors.ErrCodeMissingParameter, "x")), "parameter"},
		{"service error", &smithy.GenericAPIError{Code: "DBInstanceNotFound"}, "service"},
		{"other", errors.New("boom"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyError(tt.err); got != tt.want {
				t.Errorf("classifyError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector(&Config{
		Enabled:   true,
		Namespace: "rdsctl",
		Labels:    map[string]string{"profile": "ops"},
	})
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}

	collector.RecordInvocation("CopyDBSnapshot", "result", 50*time.Millisecond)
	collector.RecordPage("DescribeDBInstances", 3)
	collector.RecordError("DeleteDBInstance", apperrors.NewError(apperrors.ErrCodeConfirmationRequired, "x"))

	path := filepath.Join(t.TempDir(), "textfile", "rdsctl.prom")
	if err := collector.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	text := string(data)
	for _, want := range []string{
		`rdsctl_invocations_total{operation="CopyDBSnapshot",outcome="result",profile="ops"} 1`,
		`rdsctl_pages_total{operation="DescribeDBInstances",profile="ops"} 1`,
		`rdsctl_items_total{operation="DescribeDBInstances",profile="ops"} 3`,
		`rdsctl_errors_total{operation="DeleteDBInstance",profile="ops",type="confirmation"} 1`,
		`rdsctl_invocation_duration_seconds_count{operation="CopyDBSnapshot",profile="ops"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q:\n%s", want, text)
		}
	}
}

func TestWriteTextfileDisabled(t *testing.T) {
	t.Parallel()

	collector, _ := NewCollector(&Config{Enabled: false})
	path := filepath.Join(t.TempDir(), "rdsctl.prom")
	if err := collector.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("disabled collector should not write a file")
	}
}

func TestConcurrentRecording(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector(nil)
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				collector.RecordInvocation("DescribeDBInstances", "result", time.Millisecond)
				collector.RecordPage("DescribeDBInstances", 1)
			}
		}()
	}
	wg.Wait()

	op := collector.Snapshot()["DescribeDBInstances"]
	if op.Count != 1000 || op.Pages != 1000 {
		t.Errorf("Count = %d, Pages = %d, want 1000 each", op.Count, op.Pages)
	}
}
