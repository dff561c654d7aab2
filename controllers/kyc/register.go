package kycController

import (
	"errors"
	"log"

	"kycapp/config"
	"kycapp/database"
	"kycapp/middleware"
	"kycapp/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registrationRequest struct {
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Password          string   `json:"password"`
	EmailVerified     bool     `json:"emailVerified"`
	PhoneVerified     bool     `json:"phoneVerified"`
	SecurityQuestions []string `json:"securityQuestions"`
	KycCaseID         uint     `json:"kyc_case_id"`
}

// Register creates a brand-new user. Duplicate email or phone is a conflict.
func Register(c *fiber.Ctx) error {
	var reqData registrationRequest
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ? OR phone = ?", reqData.Email, reqData.Phone).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Email:        reqData.Email,
		Phone:        reqData.Phone,
		PasswordHash: string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user_id": newUser.ID,
		"email":   newUser.Email,
		"phone":   newUser.Phone,
	})
}

// KycRegister upserts a user by email-or-phone, links them as the owner of
// the given case and seeds the case's Detail row with the registration
// contact fields. A missing case is logged, not an error: registration still
// succeeds unlinked.
func KycRegister(c *fiber.Ctx) error {
	var reqData registrationRequest
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	db := database.Database.Db

	var user models.User
	existing := false

	err = db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("email = ? OR phone = ?", reqData.Email, reqData.Phone).First(&user)
		switch {
		case result.Error == nil:
			existing = true
			user.Email = reqData.Email
			user.Phone = reqData.Phone
			user.PasswordHash = string(hashedPassword)
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			user = models.User{
				Email:        reqData.Email,
				Phone:        reqData.Phone,
				PasswordHash: string(hashedPassword),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return result.Error
		}

		var kycCase models.KycCase
		if err := tx.First(&kycCase, reqData.KycCaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("KYC case %d not found, registering user %d without a case link", reqData.KycCaseID, user.ID)
				return nil
			}
			return err
		}

		kycCase.UserID = &user.ID
		if err := tx.Save(&kycCase).Error; err != nil {
			return err
		}

		var detail models.KycDetail
		if err := tx.Where("kyc_case_id = ?", reqData.KycCaseID).First(&detail).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			detail = models.KycDetail{
				KycCaseID: reqData.KycCaseID,
				UserID:    &user.ID,
				Email:     reqData.Email,
				Phone:     reqData.Phone,
			}
			return tx.Create(&detail).Error
		}

		detail.UserID = &user.ID
		detail.Email = reqData.Email
		detail.Phone = reqData.Phone
		return tx.Save(&detail).Error
	})
	if err != nil {
		log.Printf("Error registering user for case %d: %v", reqData.KycCaseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed!", nil)
	}

	message := "User registered successfully."
	if existing {
		message = "User updated successfully."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"user_id": user.ID,
		"email":   user.Email,
		"phone":   user.Phone,
	})
}
