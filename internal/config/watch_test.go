package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type reload struct {
	m   *Manifest
	err error
}

func TestWatchManifest(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	got := make(chan reload, 8)
	ctx, cancel := context.WithCancel(context.Background())
	w, err := WatchManifest(ctx, path, func(m *Manifest, err error) { got <- reload{m, err} })
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	updated := "version: 1\ngroups:\n  - title: Renamed\n    options: []\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case r := <-got:
		require.NoError(t, r.err)
		require.Equal(t, "Renamed", r.m.Groups[0].Title)
	case <-time.After(5 * time.Second):
		t.Fatal("manifest reload not observed")
	}

	require.NoError(t, os.WriteFile(path, []byte("version: [\n"), 0o644))
	select {
	case r := <-got:
		require.Error(t, r.err)
		require.Nil(t, r.m)
	case <-time.After(5 * time.Second):
		t.Fatal("broken manifest not reported")
	}

	cancel()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchManifestMissingDirectory(t *testing.T) {
	_, err := WatchManifest(context.Background(), filepath.Join(t.TempDir(), "nope", "options.yaml"), func(*Manifest, error) {})
	require.Error(t, err)
}
