// Package store persists generated podcast audio as flat files on disk.
//
// There is deliberately no database: a generated episode's lifecycle ends at
// the file write, and the HTTP layer serves the directory statically. Names
// are uniquified with a random UUID, so concurrent generations for the same
// location never collide and the directory needs no locking.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// nonAlphanumeric matches every byte that gets replaced by "_" in filenames.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// FileStore writes audio files into a single directory.
type FileStore struct {
	dir string
}

// New creates a FileStore rooted at dir. The directory is created lazily on
// the first Save, not here, so constructing a store is infallible.
func New(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory this store writes into.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes data to name inside the store directory in one full-buffer
// write, creating the directory first if needed (idempotent). It returns the
// full path of the written file.
func (s *FileStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("store: create dir %q: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store: write %q: %w", path, err)
	}
	return path, nil
}

// EpisodeFileName builds a unique MP3 filename for one generated episode:
// a fixed prefix, the sanitised location, the language code, the voice
// preference, and a fresh random UUID.
func EpisodeFileName(location, language, voice string) string {
	return fmt.Sprintf("podcast_%s_%s_%s_%s.mp3",
		SanitizeLocation(location), language, voice, uuid.NewString())
}

// SanitizeLocation lowercases location and replaces every non-alphanumeric
// character with an underscore, making it safe for filenames and URLs.
func SanitizeLocation(location string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(location, "_"))
}
