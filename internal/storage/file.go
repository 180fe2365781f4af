package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps the blob in a single data file. When backups are
// enabled, every write also drops a timestamped copy next to the data
// file, standing in for the original "download a backup" behaviour.
type FileStore struct {
	path    string
	backups bool
}

// NewFileStore creates a store for dir/filename, creating dir if needed.
func NewFileStore(dir, filename string, backups bool) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, filename), backups: backups}, nil
}

func (fs *FileStore) Read() (string, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", fs.path, err)
	}
	return string(data), nil
}

func (fs *FileStore) Write(content string) error {
	if err := os.WriteFile(fs.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fs.path, err)
	}
	if fs.backups {
		if err := fs.writeBackup(content); err != nil {
			return err
		}
	}
	return nil
}

func (fs *FileStore) Exists() bool {
	_, err := os.Stat(fs.path)
	return err == nil
}

// Path returns the location of the data file.
func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) writeBackup(content string) error {
	ext := filepath.Ext(fs.path)
	base := fs.path[:len(fs.path)-len(ext)]
	backupPath := fmt.Sprintf("%s_%s%s", base, time.Now().Format("2006-01-02"), ext)
	if err := os.WriteFile(backupPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write backup %s: %w", backupPath, err)
	}
	return nil
}
