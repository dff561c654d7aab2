package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStorage writes uploads to a local directory. The default backend for
// development; files are served back through the /files route.
type DiskStorage struct {
	Dir string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{Dir: dir}
}

func (s *DiskStorage) Store(content []byte, caseID uint, docType, filename string) (string, error) {
	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	// Unique filename so re-uploads never clobber a half-written file
	ext := filepath.Ext(filename)
	newFilename := fmt.Sprintf("%d_%s_%s%s", caseID, docType, uuid.NewString(), ext)
	filePath := filepath.Join(s.Dir, newFilename)

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return "", err
	}

	return filePath, nil
}

func (s *DiskStorage) ResolveURL(handle string) (string, bool) {
	if handle == "" {
		return "", false
	}
	if _, err := os.Stat(handle); err != nil {
		return "", false
	}
	return "/files/" + filepath.Base(handle), true
}

func (s *DiskStorage) Ping() error {
	return os.MkdirAll(s.Dir, 0755)
}
