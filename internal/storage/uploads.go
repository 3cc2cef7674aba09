package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// allowedExtensions maps the extensions accepted for uploads. Documents
// and logistics attachments share one list.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadStore writes multipart uploads under a base directory and
// removes them again when their owning rows are deleted.
type UploadStore struct {
	baseDir  string
	maxBytes int64
}

func NewUploadStore(baseDir string, maxBytes int64) (*UploadStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{baseDir: baseDir, maxBytes: maxBytes}, nil
}

// Save stores one uploaded file under baseDir/subdir with a generated
// name and returns the path relative to the base directory.
func (s *UploadStore) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload subdir: %w", err)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return filepath.Join(subdir, name), nil
}

// Remove deletes a previously saved file. Missing files are not an
// error; cascade deletes may run twice.
func (s *UploadStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	full := filepath.Join(s.baseDir, filepath.Clean("/"+path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Resolve maps a stored relative path back to an absolute one for
// serving downloads. Paths escaping the base directory resolve inside
// it anyway.
func (s *UploadStore) Resolve(path string) string {
	return filepath.Join(s.baseDir, filepath.Clean("/"+path))
}
