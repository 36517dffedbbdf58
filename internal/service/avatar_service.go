package service

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/talentra/hrm-backend/internal/config"
)

// Sentinel errors for avatar uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Allowed image MIME types.
var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AvatarService stores user avatars on the local avatar disk. Files are
// keyed by their original filename, so re-uploading the same filename
// overwrites the previous object.
type AvatarService struct {
	cfg *config.Config
}

// NewAvatarService creates a new AvatarService.
func NewAvatarService(cfg *config.Config) *AvatarService {
	return &AvatarService{cfg: cfg}
}

// Save writes the uploaded file into the avatar directory and returns the
// public URL to store on the user record.
func (s *AvatarService) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !allowedMIMETypes[contentType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}

	if header.Size > s.cfg.MaxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	if err := os.MkdirAll(s.cfg.AvatarDir, 0o755); err != nil {
		return "", fmt.Errorf("create avatar dir: %w", err)
	}

	// Keyed by original filename; Base strips any path components the
	// client smuggled in.
	filename := filepath.Base(header.Filename)
	destPath := filepath.Join(s.cfg.AvatarDir, filename)

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.cfg.PublicBaseURL + "/uploads/avatars/" + filename, nil
}

// Remove deletes the object backing the given avatar URL. Removing an
// already-absent file is a no-op, so the operation is idempotent.
func (s *AvatarService) Remove(photoURL string) error {
	if photoURL == "" {
		return nil
	}

	filename := path.Base(strings.TrimSuffix(photoURL, "/"))
	if filename == "." || filename == "/" {
		return nil
	}

	err := os.Remove(filepath.Join(s.cfg.AvatarDir, filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove avatar: %w", err)
	}
	return nil
}
