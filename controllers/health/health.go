package healthController

import (
	"fmt"
	"time"

	"kycapp/database"
	"kycapp/storage"

	"github.com/gofiber/fiber/v2"
)

// Health reports per-dependency status for the store and the blob backend.
func Health(c *fiber.Ctx) error {
	dbStatus := "connected"
	sqlDB, err := database.Database.Db.DB()
	if err != nil {
		dbStatus = fmt.Sprintf("error: %v", err)
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = fmt.Sprintf("error: %v", err)
	}

	storageStatus := "connected"
	if err := storage.Active.Ping(); err != nil {
		storageStatus = fmt.Sprintf("error: %v", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  dbStatus,
		"storage":   storageStatus,
	})
}

// Root lists the API surface.
func Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "KYC API",
		"endpoints": fiber.Map{
			"health":           "/health",
			"register":         "/register",
			"kyc_register":     "/kyc/register",
			"kyc_case":         "/kyc/case",
			"kyc_upload":       "/kyc/upload",
			"kyc_details":      "/kyc/details",
			"kyc_screen_data":  "/kyc/screen-data/:caseId",
			"kyc_progress":     "/kyc/progress/:caseId",
			"kyc_auto_details": "/kyc/auto-details/:caseId",
			"customers":        "/customers",
			"files":            "/files/*",
		},
	})
}
