package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_RequiresFiles(t *testing.T) {
	_, err := New(nil, 0, nil)
	require.Error(t, err)
}

func TestNew_DeduplicatesDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")}, 0, nil)
	require.NoError(t, err)
	require.Len(t, w.dirs, 1)
	require.Equal(t, DefaultDebounce, w.debounce)
}

func TestWatcher_DebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "notes.yaml")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(watched, []byte("title: a\n"), 0o600))

	w, err := New([]string{watched}, 50*time.Millisecond, nil)
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		calls [][]string
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, changed []string) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, changed)
		})
	}()

	// Give the watcher time to register its directories.
	time.Sleep(100 * time.Millisecond)
	for i := range 3 {
		require.NoError(t, os.WriteFile(watched, []byte("title: "+string(rune('b'+i))+"\n"), 0o600))
	}
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) > 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	for _, changed := range calls {
		require.NotContains(t, changed, other)
	}
	abs, err := filepath.Abs(watched)
	require.NoError(t, err)
	require.Equal(t, []string{abs}, calls[0])
}
