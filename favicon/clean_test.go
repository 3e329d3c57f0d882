package favicon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func stubThrow(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := throw
	throw = fn
	t.Cleanup(func() { throw = orig })
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"favicon.ico", "favicon-16x16.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "apple-touch-icon.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	var thrown []string
	stubThrow(t, func(path string) error {
		thrown = append(thrown, filepath.Base(path))
		return os.Remove(path)
	})

	moved, err := Clean(context.Background(), dir, Names(Transparent.Outputs))
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if len(moved) != 2 || len(thrown) != 2 {
		t.Fatalf("moved %v, thrown %v", moved, thrown)
	}
	if thrown[0] != "favicon.ico" || thrown[1] != "favicon-16x16.png" {
		t.Errorf("thrown = %v", thrown)
	}
	if _, err := os.Stat(filepath.Join(dir, "apple-touch-icon.png")); err != nil {
		t.Error("directory should be left alone")
	}
}

func TestCleanTrashFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "favicon.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("no trash can")
	stubThrow(t, func(string) error { return boom })

	_, err := Clean(context.Background(), dir, []string{"favicon.png"})
	if !errors.Is(err, ErrIO) || !errors.Is(err, boom) {
		t.Errorf("error = %v", err)
	}
}
