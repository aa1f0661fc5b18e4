package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestSettingsWatcherDeliversEvents 测试设置文件修改后收到事件
func TestSettingsWatcherDeliversEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loadscreen.yaml")
	if err := os.WriteFile(path, []byte("holdAdditionalSecs: 2.0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	w, err := NewSettingsWatcher(path)
	if err != nil {
		t.Fatalf("NewSettingsWatcher() error: %v", err)
	}
	defer w.Close()

	// 给 watcher 一点启动时间，再修改文件
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("holdAdditionalSecs: 5.0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	select {
	case got := <-w.Events:
		if filepath.Clean(got) != filepath.Clean(path) {
			t.Errorf("event path = %q, want %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a settings file event")
	}
}

// TestSettingsWatcherIgnoresOtherFiles 测试同目录其他文件的修改不产生事件
func TestSettingsWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loadscreen.yaml")
	if err := os.WriteFile(path, []byte("holdAdditionalSecs: 2.0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	w, err := NewSettingsWatcher(path)
	if err != nil {
		t.Fatalf("NewSettingsWatcher() error: %v", err)
	}
	defer w.Close()

	time.Sleep(50 * time.Millisecond)
	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Errorf("unexpected event for %q", got)
	case <-time.After(300 * time.Millisecond):
		// 没有事件是预期结果
	}
}

// TestSettingsWatcherCloseTwice 测试重复 Close 安全
func TestSettingsWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loadscreen.yaml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	w, err := NewSettingsWatcher(path)
	if err != nil {
		t.Fatalf("NewSettingsWatcher() error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

// TestSettingsWatcherMissingDir 测试目录不存在时报错
func TestSettingsWatcherMissingDir(t *testing.T) {
	_, err := NewSettingsWatcher(filepath.Join(t.TempDir(), "missing", "loadscreen.yaml"))
	if err == nil {
		t.Error("NewSettingsWatcher() should fail for a missing directory")
	}
}
