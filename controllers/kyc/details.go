package kycController

import (
	"errors"
	"log"
	"strconv"

	"kycapp/config"
	"kycapp/database"
	"kycapp/middleware"
	"kycapp/models"
	"kycapp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type detailsRequest struct {
	KycCaseID        uint   `json:"kyc_case_id"`
	Name             string `json:"name"`
	DOB              string `json:"dob"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	FatherName       string `json:"father_name"`
	PanNumber        string `json:"pan_number"`
	AadharNumber     string `json:"aadhar_number"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Occupation       string `json:"occupation"`
	SourceOfFunds    string `json:"source_of_funds"`
	BusinessType     string `json:"business_type"`
	IsPep            bool   `json:"is_pep"`
	PepDetails       string `json:"pep_details"`
	AnnualIncome     string `json:"annual_income"`
	PurposeOfAccount string `json:"purpose_of_account"`
	Nationality      string `json:"nationality"`
	MaritalStatus    string `json:"marital_status"`
	NomineeName      string `json:"nominee_name"`
	NomineeRelation  string `json:"nominee_relation"`
	NomineeContact   string `json:"nominee_contact"`
}

func (r *detailsRequest) apply(detail *models.KycDetail) {
	detail.Name = r.Name
	detail.DOB = r.DOB
	detail.Gender = r.Gender
	detail.Address = r.Address
	detail.FatherName = r.FatherName
	detail.PanNumber = r.PanNumber
	detail.AadharNumber = r.AadharNumber
	detail.Email = r.Email
	detail.Phone = r.Phone
	detail.Occupation = r.Occupation
	detail.SourceOfFunds = r.SourceOfFunds
	detail.BusinessType = r.BusinessType
	detail.IsPep = r.IsPep
	detail.PepDetails = r.PepDetails
	detail.AnnualIncome = r.AnnualIncome
	detail.PurposeOfAccount = r.PurposeOfAccount
	detail.Nationality = r.Nationality
	detail.MaritalStatus = r.MaritalStatus
	detail.NomineeName = r.NomineeName
	detail.NomineeRelation = r.NomineeRelation
	detail.NomineeContact = r.NomineeContact
}

// SaveDetails upserts the case's Detail row, then cascades a "submitted"
// transition onto the case and the owning user's status row (creating the
// status row if absent).
func SaveDetails(c *fiber.Ctx) error {
	var reqData detailsRequest
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var detail models.KycDetail
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("kyc_case_id = ?", reqData.KycCaseID).First(&detail)
		switch {
		case result.Error == nil:
			reqData.apply(&detail)
			if err := tx.Save(&detail).Error; err != nil {
				return err
			}
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			detail = models.KycDetail{KycCaseID: reqData.KycCaseID}
			reqData.apply(&detail)
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		default:
			return result.Error
		}

		var kycCase models.KycCase
		if err := tx.First(&kycCase, reqData.KycCaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("KYC case %d not found while saving details", reqData.KycCaseID)
				return nil
			}
			return err
		}

		kycCase.Status = "submitted"
		if err := tx.Save(&kycCase).Error; err != nil {
			return err
		}

		if kycCase.UserID == nil {
			log.Printf("KYC case %d has no user, skipping status update", reqData.KycCaseID)
			return nil
		}

		kycID := strconv.FormatUint(uint64(reqData.KycCaseID), 10)

		var kycStatus models.KycStatus
		if err := tx.Where("user_id = ?", *kycCase.UserID).First(&kycStatus).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			kycStatus = models.KycStatus{
				UserID: *kycCase.UserID,
				Status: "submitted",
				KycID:  kycID,
			}
			return tx.Create(&kycStatus).Error
		}

		kycStatus.Status = "submitted"
		kycStatus.KycID = kycID
		return tx.Save(&kycStatus).Error
	})
	if err != nil {
		log.Printf("Error saving KYC details for case %d: %v", reqData.KycCaseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save KYC details!", nil)
	}

	// Best-effort confirmation mail, never blocks the response
	if config.AppConfig.EmailSender != "" && detail.Email != "" {
		go func(email, name string, caseID uint) {
			if err := utils.SendSubmissionEmail(email, name, caseID); err != nil {
				log.Printf("Error sending submission email for case %d: %v", caseID, err)
			}
		}(detail.Email, detail.Name, reqData.KycCaseID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "KYC details saved successfully.", fiber.Map{
		"kyc_details_id": detail.ID,
		"kyc_case_id":    detail.KycCaseID,
	})
}
