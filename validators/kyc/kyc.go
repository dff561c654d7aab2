package kycValidator

import (
	"reflect"
	"regexp"
	"strings"

	"kycapp/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func init() {
	// Report field errors under their json names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Helper to validate mobile number format
func isValidMobile(phone string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(phone)
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" validate:"required,email"`
			Phone    string `json:"phone" validate:"required"`
			Password string `json:"password" validate:"required,min=8"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid " + strings.ToLower(fieldErr.Field()) + "!"
			}
		}

		if reqData.Phone != "" && !isValidMobile(reqData.Phone) {
			errors["phone"] = "Invalid mobile number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Details validator middleware
func Details() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			KycCaseID     uint   `json:"kyc_case_id" validate:"required"`
			Name          string `json:"name" validate:"required"`
			DOB           string `json:"dob" validate:"required"`
			Gender        string `json:"gender" validate:"required"`
			Address       string `json:"address" validate:"required"`
			FatherName    string `json:"father_name" validate:"required"`
			PanNumber     string `json:"pan_number" validate:"required"`
			AadharNumber  string `json:"aadhar_number" validate:"required"`
			Email         string `json:"email" validate:"required,email"`
			Phone         string `json:"phone" validate:"required"`
			Occupation    string `json:"occupation" validate:"required"`
			SourceOfFunds string `json:"source_of_funds" validate:"required"`
			BusinessType  string `json:"business_type" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid " + strings.ToLower(fieldErr.Field()) + "!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
