package media

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// URLPrefix is where the media directory is mounted on the router.
const URLPrefix = "/media"

// Store names synthesized audio files and keeps the directory they are
// served from. It never writes audio itself: the TTS client writes
// straight to the allocated path. Files accumulate for the process
// lifetime, there is no eviction.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// EnsureDir creates the output directory if absent. Safe to call from
// concurrent requests.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0755)
}

// Allocate picks a fresh filename and returns both the URL clients fetch
// it from and the filesystem path the synthesizer writes to. Uniqueness
// is probabilistic via the random id, never checked against the dir.
func (s *Store) Allocate() (urlPath, fsPath string) {
	name := fmt.Sprintf("speech_%s.mp3", uuid.NewString()[:8])
	return URLPrefix + "/" + name, filepath.Join(s.dir, name)
}
