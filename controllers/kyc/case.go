package kycController

import (
	"errors"
	"log"

	"kycapp/database"
	"kycapp/extraction"
	"kycapp/middleware"
	"kycapp/models"
	"kycapp/profile"
	"kycapp/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCase opens a new KYC case. Ids are allocated as max existing id + 1
// inside the creation transaction; concurrent creations may race, which the
// store's unique primary key turns into a retryable error for one of them.
func CreateCase(c *fiber.Ctx) error {
	db := database.Database.Db

	var kycCase models.KycCase
	err := db.Transaction(func(tx *gorm.DB) error {
		newID := uint(1)
		var lastCase models.KycCase
		if err := tx.Order("id desc").First(&lastCase).Error; err == nil {
			newID = lastCase.ID + 1
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		kycCase = models.KycCase{Status: "initiated"}
		kycCase.ID = newID
		return tx.Create(&kycCase).Error
	})
	if err != nil {
		log.Printf("Error creating KYC case: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create KYC case!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "KYC case created successfully.", fiber.Map{
		"kyc_case_id": kycCase.ID,
		"status":      kycCase.Status,
	})
}

// Progress recomputes the onboarding checklist from current rows. Nothing is
// persisted; two calls with no intervening writes return the same answer.
func Progress(c *fiber.Ctx) error {
	caseID, err := c.ParamsInt("caseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid case id!", nil)
	}

	db := database.Database.Db

	var kycCase models.KycCase
	if err := db.First(&kycCase, caseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "KYC case not found!", nil)
	}

	var documents []models.KycDocument
	if err := db.Where("kyc_case_id = ?", caseID).Find(&documents).Error; err != nil {
		log.Printf("Error loading documents for case %d: %v", caseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to get progress!", nil)
	}

	steps, currentStep := progress.Evaluate(kycCase, documents)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "KYC progress fetched successfully.", fiber.Map{
		"steps":        steps,
		"current_step": currentStep,
	})
}

// ScreenData returns the full picture for a case: case row, details (or an
// auto-populated preview when no Detail row exists yet), documents and the
// owning user's status row.
func ScreenData(c *fiber.Ctx) error {
	caseID, err := c.ParamsInt("caseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid case id!", nil)
	}

	db := database.Database.Db

	var kycCase models.KycCase
	if err := db.First(&kycCase, caseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "KYC case not found!", nil)
	}

	var documents []models.KycDocument
	if err := db.Where("kyc_case_id = ?", caseID).Find(&documents).Error; err != nil {
		log.Printf("Error loading documents for case %d: %v", caseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to get screen data!", nil)
	}

	var detailsData interface{}
	var detail models.KycDetail
	if err := db.Where("kyc_case_id = ?", caseID).First(&detail).Error; err == nil {
		detailsData = detail
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		detailsData = profile.AutoPopulate(extraction.Current, documents, loadCaseUser(db, kycCase))
	} else {
		log.Printf("Error loading details for case %d: %v", caseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to get screen data!", nil)
	}

	var statusData interface{}
	if kycCase.UserID != nil {
		var kycStatus models.KycStatus
		if err := db.Where("user_id = ?", *kycCase.UserID).First(&kycStatus).Error; err == nil {
			statusData = kycStatus
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "KYC screen data fetched successfully.", fiber.Map{
		"case": fiber.Map{
			"id":         kycCase.ID,
			"status":     kycCase.Status,
			"user_id":    kycCase.UserID,
			"created_at": kycCase.CreatedAt,
			"updated_at": kycCase.UpdatedAt,
		},
		"details":   detailsData,
		"documents": documents,
		"status":    statusData,
	})
}

// AutoDetails previews the profile a case's documents and registration would
// produce, without writing anything.
func AutoDetails(c *fiber.Ctx) error {
	caseID, err := c.ParamsInt("caseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid case id!", nil)
	}

	db := database.Database.Db

	var kycCase models.KycCase
	if err := db.First(&kycCase, caseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "KYC case not found!", nil)
	}

	var documents []models.KycDocument
	if err := db.Where("kyc_case_id = ?", caseID).Find(&documents).Error; err != nil {
		log.Printf("Error loading documents for case %d: %v", caseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to get auto-populated details!", nil)
	}

	details := profile.AutoPopulate(extraction.Current, documents, loadCaseUser(db, kycCase))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Auto-populated details retrieved successfully.", fiber.Map{
		"kyc_case_id": kycCase.ID,
		"details":     details,
	})
}

func loadCaseUser(db *gorm.DB, kycCase models.KycCase) *models.User {
	if kycCase.UserID == nil {
		return nil
	}
	var user models.User
	if err := db.First(&user, *kycCase.UserID).Error; err != nil {
		return nil
	}
	return &user
}
