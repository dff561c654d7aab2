package kycController

import (
	"os"
	"path/filepath"

	"kycapp/middleware"
	"kycapp/storage"

	"github.com/gofiber/fiber/v2"
)

// GetFile resolves a stored document handle. Disk handles are served
// directly; bucket handles come back as a short-lived download URL.
func GetFile(c *fiber.Ctx) error {
	handle := c.Params("*")
	if handle == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File path is required!", nil)
	}

	// DiskStorage.ResolveURL yields a /files URL that points back at this
	// route, so disk handles are served directly instead of redirected.
	if disk, ok := storage.Active.(*storage.DiskStorage); ok {
		// Base-name only: the handle must not escape the upload dir
		location := filepath.Join(disk.Dir, filepath.Base(handle))
		if _, err := os.Stat(location); err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found!", nil)
		}
		return c.SendFile(location)
	}

	url, ok := storage.Active.ResolveURL(handle)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Download URL generated.", fiber.Map{
		"download_url": url,
	})
}
