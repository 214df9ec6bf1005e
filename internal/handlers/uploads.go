// internal/handlers/uploads.go
package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadsBaseDir returns where uploaded images are stored. Defaults to
// ./static/uploads when UPLOADS_DIR is not set.
func uploadsBaseDir() string {
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		return v
	}
	return "./static/uploads"
}

// ensureDir guarantees the directory exists; errors if the path is a file.
func ensureDir(path string) error {
	if path == "" {
		return errors.New("empty dir path")
	}
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.New("path exists and is not a directory")
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(path, 0o755)
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// saveUploadedImage stores the named multipart file under
// <uploads>/<subdir>/ with a uuid filename and returns its public URL.
// Returns ("", nil) when the field is absent so callers can treat the image
// as optional.
func saveUploadedImage(c *gin.Context, subdir, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	dir := filepath.Join(uploadsBaseDir(), subdir)
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	newName := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, newName)); err != nil {
		return "", err
	}
	return "/static/uploads/" + subdir + "/" + newName, nil
}
