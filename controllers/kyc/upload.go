package kycController

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"kycapp/config"
	"kycapp/database"
	"kycapp/extraction"
	"kycapp/middleware"
	"kycapp/models"
	"kycapp/profile"
	"kycapp/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UploadDocument stores a document blob, upserts its metadata row and folds
// extracted fields into the case's Detail record. The blob is written first;
// metadata only commits after a successful blob write, so a storage failure
// never leaves a dangling Document row.
func UploadDocument(c *fiber.Ctx) error {
	caseID, err := strconv.ParseUint(c.FormValue("kyc_case_id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid kyc_case_id!", nil)
	}

	docType := c.FormValue("doc_type")
	if docType == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "doc_type is required!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "file is required!", nil)
	}

	db := database.Database.Db

	var kycCase models.KycCase
	if err := db.First(&kycCase, caseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "KYC case not found!", nil)
	}

	if fileHeader.Size > int64(config.AppConfig.MaxFileSize) {
		message := fmt.Sprintf("File too large. Maximum size allowed is %dMB.", config.AppConfig.MaxFileSize/(1024*1024))
		return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, message, nil)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !config.AllowedExtensions[ext] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File type not allowed!", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}

	filePath, err := storage.Active.Store(content, uint(caseID), docType, fileHeader.Filename)
	if err != nil {
		log.Printf("Error storing file for case %d: %v", caseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	var doc models.KycDocument
	err = db.Transaction(func(tx *gorm.DB) error {
		// Re-upload of the same doc_type overwrites, never duplicates
		result := tx.Where("kyc_case_id = ? AND doc_type = ?", caseID, docType).First(&doc)
		switch {
		case result.Error == nil:
			doc.FilePath = filePath
			doc.UploadedAt = time.Now().UTC()
			if err := tx.Save(&doc).Error; err != nil {
				return err
			}
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			doc = models.KycDocument{
				KycCaseID:  uint(caseID),
				DocType:    docType,
				FilePath:   filePath,
				UploadedAt: time.Now().UTC(),
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
		default:
			return result.Error
		}

		var detail models.KycDetail
		detailExists := true
		if err := tx.Where("kyc_case_id = ?", caseID).First(&detail).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			detailExists = false
			detail = models.KycDetail{KycCaseID: uint(caseID)}
		}

		if !profile.MergeDocument(extraction.Current, &detail, docType) {
			return nil
		}
		if detailExists {
			return tx.Save(&detail).Error
		}
		return tx.Create(&detail).Error
	})
	if err != nil {
		log.Printf("Error saving document for case %d: %v", caseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document uploaded successfully.", fiber.Map{
		"doc_id":      doc.ID,
		"file_path":   doc.FilePath,
		"kyc_case_id": doc.KycCaseID,
	})
}
