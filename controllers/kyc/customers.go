package kycController

import (
	"log"

	"kycapp/database"
	"kycapp/middleware"
	"kycapp/models"

	"github.com/gofiber/fiber/v2"
)

type customerOut struct {
	KycDetailsID uint   `json:"kyc_details_id"`
	KycCaseID    uint   `json:"kyc_case_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

// ListCustomers lists every case that has a Detail row, joined with the
// owning user's status.
func ListCustomers(c *fiber.Ctx) error {
	db := database.Database.Db

	var details []models.KycDetail
	if err := db.Find(&details).Error; err != nil {
		log.Printf("Error listing KYC details: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list customers!", nil)
	}

	customers := make([]customerOut, 0, len(details))
	for _, detail := range details {
		status := "unknown"

		var kycCase models.KycCase
		if err := db.First(&kycCase, detail.KycCaseID).Error; err == nil && kycCase.UserID != nil {
			var kycStatus models.KycStatus
			if err := db.Where("user_id = ?", *kycCase.UserID).First(&kycStatus).Error; err == nil {
				status = kycStatus.Status
			}
		}

		customers = append(customers, customerOut{
			KycDetailsID: detail.ID,
			KycCaseID:    detail.KycCaseID,
			Name:         detail.Name,
			Email:        detail.Email,
			Status:       status,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customers fetched successfully.", customers)
}
