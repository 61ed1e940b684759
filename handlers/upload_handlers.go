package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"bistro/config"
	"bistro/utils"

	"github.com/gofiber/fiber/v2"
)

// allowedImageTypes maps accepted MIME types to a fallback extension used
// when the uploaded filename has none.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// HandleUpload accepts a single image file, stores it under the public
// upload directory with a random name, and returns its relative URL.
// POST /api/v1/upload
func HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Missing file"})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	fallbackExt, ok := allowedImageTypes[mimeType]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Unsupported file type %q", mimeType)})
	}

	name := utils.RandomFilename(fileHeader.Filename, fallbackExt)
	if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
		log.Printf("Error creating upload dir: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to store file"})
	}
	if err := c.SaveFile(fileHeader, filepath.Join(config.AppConfig.UploadDir, name)); err != nil {
		log.Printf("Error saving upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to store file"})
	}

	return c.JSON(fiber.Map{"status": "success", "url": "/uploads/" + name})
}
