package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_KeepsDeclaredExtension(t *testing.T) {
	s := NewStore()

	path, err := s.Save([]byte("riff-data"), "clip.wav")
	require.NoError(t, err)
	defer s.Release(path)

	assert.True(t, strings.HasSuffix(path, ".wav"), "path %q should keep the upload's extension", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("riff-data"), data)
}

func TestSave_DefaultsToWebm(t *testing.T) {
	s := NewStore()

	path, err := s.Save([]byte("x"), "recording")
	require.NoError(t, err)
	defer s.Release(path)

	assert.True(t, strings.HasSuffix(path, ".webm"), "path %q should fall back to .webm", path)
}

func TestSave_UniquePaths(t *testing.T) {
	s := NewStore()

	a, err := s.Save([]byte("a"), "clip.ogg")
	require.NoError(t, err)
	defer s.Release(a)

	b, err := s.Save([]byte("b"), "clip.ogg")
	require.NoError(t, err)
	defer s.Release(b)

	assert.NotEqual(t, a, b)
}

func TestRelease_Idempotent(t *testing.T) {
	s := NewStore()

	path, err := s.Save([]byte("x"), "clip.mp3")
	require.NoError(t, err)

	s.Release(path)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// second release of a gone path must not panic or complain
	s.Release(path)
}

func TestRelease_EmptyAndMissingPath(t *testing.T) {
	s := NewStore()

	s.Release("")
	s.Release(filepath.Join(t.TempDir(), "never-existed.webm"))
}
