package slot

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/idilsaglam/daily/internal/config"
)

// exerciseSlot checks the behavior every backend shares.
func exerciseSlot(t *testing.T, s Slot) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "todos"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty slot: got %v, want ErrNotFound", err)
	}

	first := []byte(`[{"id":1,"text":"buy milk","completed":false}]`)
	if err := s.Set(ctx, "todos", first); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get(ctx, "todos")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, first) {
		t.Errorf("Get: got %s, want %s", got, first)
	}

	second := []byte(`[]`)
	if err := s.Set(ctx, "todos", second); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, err = s.Get(ctx, "todos")
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if !bytes.Equal(got, second) {
		t.Errorf("Get after overwrite: got %s, want %s", got, second)
	}

	if _, err := s.Get(ctx, "other"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on other key: got %v, want ErrNotFound", err)
	}
}

func TestMemory(t *testing.T) {
	exerciseSlot(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	v := []byte("abc")
	if err := m.Set(ctx, "k", v); err != nil {
		t.Fatal(err)
	}
	v[0] = 'z'
	got, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %q", got)
	}
}

func TestFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	f, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	exerciseSlot(t, f)

	if _, err := os.Stat(filepath.Join(dir, "todos.json")); err != nil {
		t.Errorf("expected todos.json in data dir: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFileSetFailsOnMissingDir(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := f.Set(context.Background(), "todos", []byte("[]")); err == nil {
		t.Error("expected error writing into a removed directory")
	}
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	r, err := OpenRedis(context.Background(), config.RedisConfig{Addr: mr.Addr(), Prefix: "daily:"})
	if err != nil {
		t.Fatalf("OpenRedis failed: %v", err)
	}
	defer r.Close()
	exerciseSlot(t, r)

	if !mr.Exists("daily:todos") {
		t.Error("expected value under prefixed key daily:todos")
	}
}

func TestRedisURL(t *testing.T) {
	mr := miniredis.RunT(t)
	r, err := OpenRedis(context.Background(), config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	if err != nil {
		t.Fatalf("OpenRedis with URL failed: %v", err)
	}
	defer r.Close()
	if err := r.Set(context.Background(), "todos", []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, _ := mr.Get("todos"); got != "[]" {
		t.Errorf("raw value: got %q, want []", got)
	}
}

func TestRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	if _, err := OpenRedis(context.Background(), config.RedisConfig{Addr: addr}); err == nil {
		t.Error("expected ping error for closed server")
	}
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.db")
	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	exerciseSlot(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// reopen: value survives
	s, err = OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	got, err := s.Get(context.Background(), "todos")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("Get after reopen: got %s, want []", got)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"memory", config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory}}, false},
		{"file", config.Config{Storage: config.StorageConfig{Backend: config.BackendFile, Dir: t.TempDir()}}, false},
		{"sqlite", config.Config{
			Storage: config.StorageConfig{Backend: config.BackendSQLite},
			SQLite:  config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "x.db")},
		}, false},
		{"unknown", config.Config{Storage: config.StorageConfig{Backend: "s3"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(context.Background(), tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open error = %v, wantErr %v", err, tt.wantErr)
			}
			if s != nil {
				s.Close()
			}
		})
	}
}
