package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fermata_backend/internals/configs"
)

const uploadDir = "./public/uploads"

// SaveUploadedFile menyimpan file multipart ke ./public/uploads dan
// mengembalikan URL publik yang stabil (disimpan apa adanya di kolom foto).
func SaveUploadedFile(c *fiber.Ctx, fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, filepath.Join(uploadDir, filename)); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}

	return fmt.Sprintf("%s/public/uploads/%s", configs.BaseURL, filename), nil
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s-%s-%s", timestamp, uuidStr, sanitizeFilename(originalFilename))
}
