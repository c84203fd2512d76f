package kvstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	lockFile = ".lock"
	dirPerm  = 0o700
	filePerm = 0o600
)

// FileStore keeps one file per key under a directory.
//
// Writes go to a temp file that is synced and renamed over the target, so a
// reader sees either the old or the new value. A lock file in the directory
// serializes access between processes.
type FileStore struct {
	dir string
	flk *flock.Flock
}

// NewFileStore returns a store rooted at dir.
// The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
		flk: flock.New(filepath.Join(dir, lockFile)),
	}
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get implements Store.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	if err := ValidateKey(key); err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	if _, err := os.Stat(s.dir); errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err := s.flk.RLock(); err != nil {
		return nil, false, fmt.Errorf("lock %s: %w", s.dir, err)
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set implements Store.
func (s *FileStore) Set(key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.dir, err)
	}
	defer func() { _ = s.flk.Unlock() }()

	return writeFileAtomic(s.path(key), value)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
