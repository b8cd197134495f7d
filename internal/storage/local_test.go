package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSaveFetchDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	body := []byte("%PDF-1.7 fake document body")

	key, size, err := store.Save(ctx, "subject-1", "payslip.pdf", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), size)
	assert.True(t, strings.HasPrefix(key, "subject-1/"), "key is namespaced by subject")
	assert.True(t, strings.HasSuffix(key, "_payslip.pdf"))

	got, err := store.Fetch(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Fetch(ctx, key)
	require.Error(t, err)
}

func TestSaveSameNameProducesDistinctKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	k1, _, err := store.Save(ctx, "subject-1", "doc.pdf", strings.NewReader("one"))
	require.NoError(t, err)
	k2, _, err := store.Save(ctx, "subject-1", "doc.pdf", strings.NewReader("two"))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestFetchRejectsTraversalKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Fetch(ctx, "../../etc/passwd")
	require.Error(t, err)
	_, err = store.Fetch(ctx, "/etc/passwd")
	require.Error(t, err)
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Delete(context.Background(), "subject-1/gone.pdf"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	_, _, err := store.Save(ctx, "subject-1", "doc.pdf", strings.NewReader("body"))
	require.NoError(t, err)
	_, _, err = store.Save(ctx, "subject-1", "bad.pdf", failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "subject-1"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".upload-"), "leftover temp file %s", e.Name())
	}
	// The failed save must not leave a visible object either.
	require.Len(t, entries, 1)
}
