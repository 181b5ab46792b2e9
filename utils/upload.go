package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/quicktime":  true,
	"video/x-matroska": true,
}

const MaxUploadSize = 10 * 1024 * 1024

// SaveImage stores the uploaded image from the named form field under dir and
// returns its web path. An absent field is not an error; the result is then
// empty.
func SaveImage(c *fiber.Ctx, field, dir string) (string, error) {
	return saveUpload(c, field, dir, allowedImageTypes)
}

// SaveVideo is SaveImage for video uploads.
func SaveVideo(c *fiber.Ctx, field, dir string) (string, error) {
	return saveUpload(c, field, dir, allowedVideoTypes)
}

func saveUpload(c *fiber.Ctx, field, dir string, allowed map[string]bool) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// No file in the form.
		return "", nil
	}

	contentType := file.Header.Get("Content-Type")
	if !allowed[contentType] {
		return "", fmt.Errorf("file type %s is not allowed", contentType)
	}
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("file %s exceeds the 10MB size limit", file.Filename)
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s", uuid.NewV4().String(), filepath.Base(file.Filename))
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return "/media/" + name, nil
}
