package applog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewWithEmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error = %v", err)
	}
	defer closeFn()
	logger.Info("should not panic or write anywhere visible")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "giga.log")
	logger, closeFn, err := New(path)
	if err != nil {
		t.Fatalf("New(%q) error = %v", path, err)
	}
	logger.Info("hello")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file is empty, want a log line")
	}
}
