package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage abstracts where uploaded files live so handlers and services
// never touch the filesystem directly.
type Storage interface {
	Save(subdir, filename string, r io.Reader) (string, error)
	Open(storedPath string) (io.ReadCloser, error)
	Delete(storedPath string) error
}

// LocalStorage stores files on the local disk under a configured root.
type LocalStorage struct {
	root    string
	maxSize int64
}

// NewLocalStorage creates a local disk storage rooted at path.
func NewLocalStorage(root string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &LocalStorage{root: root, maxSize: maxSize}, nil
}

// MaxSize returns the configured upload size limit in bytes.
func (s *LocalStorage) MaxSize() int64 {
	return s.maxSize
}

// Save writes the reader's contents to a new file under subdir and
// returns the stored path relative to the storage root. The original
// filename only contributes its extension; the stored name is random.
func (s *LocalStorage) Save(subdir, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, filepath.Clean(subdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	var src io.Reader = r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}

	n, err := io.Copy(f, src)
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	}
	if s.maxSize > 0 && n > s.maxSize {
		os.Remove(dst)
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxSize)
	}

	return filepath.Join(filepath.Clean(subdir), name), nil
}

// Open opens a previously stored file for reading.
func (s *LocalStorage) Open(storedPath string) (io.ReadCloser, error) {
	full, err := s.resolve(storedPath)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Delete removes a stored file. Missing files are not an error.
func (s *LocalStorage) Delete(storedPath string) error {
	full, err := s.resolve(storedPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// resolve joins a stored path to the root and rejects traversal
// outside the storage root.
func (s *LocalStorage) resolve(storedPath string) (string, error) {
	full := filepath.Join(s.root, filepath.Clean("/"+storedPath))
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	fullAbs, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}
	if fullAbs != rootAbs && !strings.HasPrefix(fullAbs, rootAbs+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid stored path")
	}
	return fullAbs, nil
}
