package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/cli"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := cli.NewSessionStore(path)

	want := cli.Session{UserID: "u1", Email: "kim@example.com", LoggedInAt: time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}
}

func TestSessionStore_LoadMissing(t *testing.T) {
	t.Parallel()
	store := cli.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	_, err := store.Load()
	if !errors.Is(err, cli.ErrNotLoggedIn) {
		t.Errorf("Load() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestSessionStore_LoadCorrupt(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := cli.NewSessionStore(path).Load()
	if err == nil || errors.Is(err, cli.ErrNotLoggedIn) {
		t.Errorf("Load() error = %v, want a decode error", err)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	t.Parallel()
	store := cli.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() on empty store error = %v", err)
	}
	if err := store.Save(cli.Session{UserID: "u1", Email: "kim@example.com"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, cli.ErrNotLoggedIn) {
		t.Errorf("Load() after Clear error = %v, want ErrNotLoggedIn", err)
	}
}
