package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWatcherReportsYAMLChanges 测试修改 YAML 文件时发出通知
func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// 非 YAML 文件不应触发通知
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "units.yaml")
	if err := os.WriteFile(target, []byte(validUnitConfig), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "units.yaml" {
			t.Errorf("Event for %q, want units.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("Watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for change event")
	}
}

// TestWatcherCloseIsIdempotent 测试重复关闭不会 panic
func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if _, ok := <-w.Events; ok {
		t.Error("Events channel should be closed")
	}
}

// TestNewWatcherMissingDir 测试监听不存在的目录返回错误
func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestIsConfigFile(t *testing.T) {
	tests := map[string]bool{
		"units.yaml":  true,
		"units.YML":   true,
		"units.json":  false,
		"units.yaml~": false,
	}
	for path, want := range tests {
		if got := isConfigFile(path); got != want {
			t.Errorf("isConfigFile(%q) = %v, want %v", path, got, want)
		}
	}
}
