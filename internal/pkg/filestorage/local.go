package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/asmit/placenet/internal/pkg/logger"
)

// ErrUnsupportedFileType is returned for uploads outside the MIME allow-list
var ErrUnsupportedFileType = errors.New("unsupported file type")

// allowedContentTypes is the upload MIME allow-list
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

// ValidateContentType checks an upload against the MIME allow-list. It must
// be called before any database write that references the file.
func ValidateContentType(fileHeader *multipart.FileHeader) error {
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return fmt.Errorf("%w: %s (allowed: jpeg, jpg, png, pdf)", ErrUnsupportedFileType, contentType)
	}
	return nil
}

// LocalStorage stores attachments on the local filesystem. Files are keyed by
// generated filenames; the relative path is the join key between a database
// row and its attachment.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL is
// prepended when building public URLs for stored files.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile stores an uploaded file under subDir with a generated filename
// and returns the relative path ("<subDir>/<filename>").
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := filepath.Join(ls.basePath, subDir)
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	filename := generateFilename(fileHeader.Filename)
	dstPath := filepath.Join(dirPath, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := subDir + "/" + filename
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// DeleteFile removes a stored file by its relative path. Deleting a missing
// file is treated as success so deletes stay idempotent.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	if relPath == "" {
		return nil
	}

	cleaned := filepath.Clean(relPath)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid file path: %s", relPath)
	}

	physicalPath := filepath.Join(ls.basePath, cleaned)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// FileURL returns the public URL for a stored relative path
func (ls *LocalStorage) FileURL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return ls.baseURL + "/" + relPath
}

// generateFilename builds a collision-free filename that still hints at the
// original name: "<slug-of-base>-<uuid><ext>".
func generateFilename(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)

	s := slug.Make(base)
	if s == "" {
		s = "file"
	}

	return s + "-" + uuid.New().String() + strings.ToLower(ext)
}
