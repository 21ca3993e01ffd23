package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotatingFileWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	rf, err := OpenRotatingFile(path, 0, 3)
	if err != nil {
		t.Fatalf("OpenRotatingFile() error = %v", err)
	}
	defer rf.Close()

	for i := 0; i < 100; i++ {
		if _, err := rf.Write([]byte("line\n")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	if _, err := os.Stat(rf.Backup(1)); !os.IsNotExist(err) {
		t.Error("rotation should be disabled when maxBytes is zero")
	}
}

func TestRotatingFileRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	rf, err := OpenRotatingFile(path, 10, 2)
	if err != nil {
		t.Fatalf("OpenRotatingFile() error = %v", err)
	}
	defer rf.Close()

	for _, line := range []string{"first-ok\n", "second-ok\n", "third-ok\n", "fourth-ok\n"} {
		if _, err := rf.Write([]byte(line)); err != nil {
			t.Fatalf("Write(%q) error = %v", line, err)
		}
	}

	want := map[string]string{
		path:         "fourth-ok\n",
		rf.Backup(1): "third-ok\n",
		rf.Backup(2): "second-ok\n",
	}
	for name, content := range want {
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(data) != content {
			t.Errorf("%s = %q, want %q", filepath.Base(name), data, content)
		}
	}

	if _, err := os.Stat(rf.Backup(3)); !os.IsNotExist(err) {
		t.Error("backups beyond the limit should be removed")
	}
}

func TestRotatingFileAppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("previous run\n"), 0600); err != nil {
		t.Fatal(err)
	}

	rf, err := OpenRotatingFile(path, 1024, 1)
	if err != nil {
		t.Fatalf("OpenRotatingFile() error = %v", err)
	}
	if _, err := rf.Write([]byte("this run\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := rf.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "previous run\n") {
		t.Errorf("existing content should be kept, got %q", data)
	}
}

func TestRotatingFileClosed(t *testing.T) {
	rf, err := OpenRotatingFile(filepath.Join(t.TempDir(), "app.log"), 0, 0)
	if err != nil {
		t.Fatalf("OpenRotatingFile() error = %v", err)
	}
	if err := rf.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := rf.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got %v", err)
	}
	if _, err := rf.Write([]byte("late")); err == nil {
		t.Error("Write() after Close() should fail")
	}
}

func TestOpenRotatingFileRequiresName(t *testing.T) {
	if _, err := OpenRotatingFile("", 0, 0); err == nil {
		t.Error("expected error for empty filename")
	}
}
