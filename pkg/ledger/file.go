package ledger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// File is a directory-backed ledger for CLI usage. Each entry lives in its
// own JSON file, sharded by the first two hash characters so one directory
// never accumulates every logo.
type File struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates a file ledger rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

// Contains reports whether the hash's entry file exists.
func (f *File) Contains(_ context.Context, hash string) (bool, error) {
	_, err := os.Stat(f.path(hash))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert writes the entry file, failing with ErrDuplicate if it exists.
// The write goes through O_CREATE|O_EXCL under a process-level mutex, so
// concurrent inserts in one process and across processes both lose cleanly.
func (f *File) Insert(_ context.Context, e Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(e.Hash)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if os.IsExist(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(e)
}

// Len counts recorded entries by walking the shard directories.
func (f *File) Len() (int, error) {
	count := 0
	err := filepath.WalkDir(f.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			count++
		}
		return nil
	})
	return count, err
}

// Clear removes every recorded entry.
func (f *File) Clear() error {
	if err := os.RemoveAll(f.dir); err != nil {
		return err
	}
	return os.MkdirAll(f.dir, 0o755)
}

// Close does nothing for the file backend.
func (f *File) Close() error {
	return nil
}

func (f *File) path(hash string) string {
	if len(hash) < 3 {
		return filepath.Join(f.dir, "short", hash+".json")
	}
	return filepath.Join(f.dir, hash[:2], hash[2:]+".json")
}

// Ensure File implements Ledger.
var _ Ledger = (*File)(nil)
