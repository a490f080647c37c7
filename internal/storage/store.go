package storage

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// jpegQuality matches the rendition quality the detection service receives.
const jpegQuality = 95

// StorageError reports a failed artifact write: disk full, permissions, or
// an unencodable target name. Writes are reported, never retried.
type StorageError struct {
	Name string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to store artifact %s: %v", e.Name, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store persists image artifacts into one flat directory.
//
// A Store holds no locks. Concurrent Save calls are safe as long as names
// are unique, which UniqueName guarantees.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the on-disk location of a named artifact.
func (s *Store) Path(name string) string { return filepath.Join(s.dir, name) }

// Save encodes img according to name's extension and writes it under the
// store directory. JPEG output uses quality 95. Failures surface as
// *StorageError.
func (s *Store) Save(img image.Image, name string) error {
	if err := imaging.Save(img, s.Path(name), imaging.JPEGQuality(jpegQuality)); err != nil {
		return &StorageError{Name: name, Err: err}
	}
	return nil
}
