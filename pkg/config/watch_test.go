package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "columns.toml")
	if err := os.WriteFile(path, []byte("[plugin.columns]\nmax_columns = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ready := make(chan struct{})
	reloaded := make(chan []string, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, s, log.New(io.Discard),
			WithReady(ready),
			WithReloadHook(func(unknown []string) { reloaded <- unknown }))
	}()

	select {
	case <-ready:
	case err := <-done:
		t.Fatalf("Watch() returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher not ready")
	}

	if err := os.WriteFile(path, []byte("[plugin.columns]\nmax_columns = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		if v, _ := s.Int(keyMax); v == 1 {
			break
		}
		select {
		case <-reloaded:
		case <-deadline:
			t.Fatal("config change not picked up")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch() did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "columns.toml")
	err := Watch(context.Background(), path, NewStore(), log.New(io.Discard))
	if err == nil {
		t.Fatal("Watch() = nil, want error for missing directory")
	}
}
