// Package storage keeps attachment blobs on disk, one directory per tender.
// Blob writes and deletes are not transactional with the metadata rows; the
// services sequence them and log mismatches instead of hiding them.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"tender-service/utils"
)

// ErrBlobNotFound reports a missing physical blob.
var ErrBlobNotFound = errors.New("blob not found")

// Blobs is the blob-store collaborator, keyed by (tenderID, storedName).
type Blobs interface {
	Save(tenderID int64, fileName string, src io.Reader) (storedName, path string, size int64, err error)
	Open(tenderID int64, storedName string) (io.ReadCloser, error)
	Delete(tenderID int64, storedName string) error
	DeleteAll(tenderID int64) error
}

// DiskStore implements Blobs on the local filesystem.
type DiskStore struct {
	baseDir string
}

// NewDiskStore roots a store at baseDir, creating it when missing.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (d *DiskStore) tenderDir(tenderID int64) string {
	return filepath.Join(d.baseDir, strconv.FormatInt(tenderID, 10))
}

// Save writes the blob under a fresh uuid-prefixed name and returns the
// name, the final path and the byte count written.
func (d *DiskStore) Save(tenderID int64, fileName string, src io.Reader) (string, string, int64, error) {
	dir := d.tenderDir(tenderID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", 0, fmt.Errorf("create tender dir: %w", err)
	}

	storedName := utils.GenerateStorageName(fileName)
	path := filepath.Join(dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", 0, fmt.Errorf("create blob %s: %w", path, err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return "", "", 0, fmt.Errorf("write blob %s: %w", path, err)
	}
	return storedName, path, size, nil
}

// Open returns a reader over one blob.
func (d *DiskStore) Open(tenderID int64, storedName string) (io.ReadCloser, error) {
	path := filepath.Join(d.tenderDir(tenderID), filepath.Base(storedName))
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open blob %s: %w", path, err)
	}
	return f, nil
}

// Delete removes one blob.
func (d *DiskStore) Delete(tenderID int64, storedName string) error {
	path := filepath.Join(d.tenderDir(tenderID), filepath.Base(storedName))
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return ErrBlobNotFound
	}
	if err != nil {
		return fmt.Errorf("delete blob %s: %w", path, err)
	}
	return nil
}

// DeleteAll removes a tender's whole blob directory.
func (d *DiskStore) DeleteAll(tenderID int64) error {
	if err := os.RemoveAll(d.tenderDir(tenderID)); err != nil {
		return fmt.Errorf("delete blobs of tender %d: %w", tenderID, err)
	}
	return nil
}
