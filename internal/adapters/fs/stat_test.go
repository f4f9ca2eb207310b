package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/msb/internal/adapters/fs"
)

func TestStat_ModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.o")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	want := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, want, want))

	mtime, exists, err := fs.NewStat().ModTime(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, mtime.Equal(want), "expected %v, got %v", want, mtime)
}

func TestStat_ModTime_Missing(t *testing.T) {
	mtime, exists, err := fs.NewStat().ModTime(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err, "a missing file is a staleness signal, not an error")
	assert.False(t, exists)
	assert.True(t, mtime.IsZero())
}
