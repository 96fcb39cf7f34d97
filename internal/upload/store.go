package upload

import (
	"log"
	"os"
	"path/filepath"
)

const defaultSuffix = ".webm"

// Store holds uploaded clips in uniquely named files under the OS temp
// dir. Every file lives for exactly one request: the pipeline releases it
// before responding, whatever the outcome.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Save writes the uploaded bytes to a fresh temp file and returns its
// path. The suffix is taken from the declared filename so the STT side
// can recognize the container; uploads without an extension get .webm.
func (s *Store) Save(data []byte, declaredName string) (string, error) {
	suffix := defaultSuffix
	if ext := filepath.Ext(declaredName); ext != "" {
		suffix = ext
	}

	f, err := os.CreateTemp("", "upload_*"+suffix)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}

// Release deletes the temp file. Idempotent: a second call, or a call on
// a path that is already gone, is fine. A failed delete is only logged —
// cleanup must never mask the request's own outcome.
func (s *Store) Release(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[upload] release %s fail: %v", path, err)
	}
}
