package notes

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// DefaultKey is the storage key the note mapping is kept under.
const DefaultKey = "calendarEvents"

// Storage is the key/value backend the note store persists into. Read must
// return an error satisfying errors.Is(err, fs.ErrNotExist) for absent keys.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
}

// DiskStorage keeps each key as a single JSON file under a base directory.
type DiskStorage struct {
	d *diskv.Diskv
}

// NewDiskStorage opens a diskv store rooted at basePath. Writes go through a
// temp directory and are renamed into place, so a payload is never partially
// written.
func NewDiskStorage(basePath string) *DiskStorage {
	return &DiskStorage{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, ".tmp"),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
	}
}

func (s *DiskStorage) Read(key string) ([]byte, error) {
	return s.d.Read(key)
}

func (s *DiskStorage) Write(key string, val []byte) error {
	return s.d.Write(key, val)
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + ".json",
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, ".json")
}

// MemoryStorage is an in-process Storage, used for ephemeral sessions.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Read(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: key, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (s *MemoryStorage) Write(key string, val []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
