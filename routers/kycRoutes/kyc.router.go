package kycRoutes

import (
	healthController "kycapp/controllers/health"
	kycController "kycapp/controllers/kyc"
	kycValidator "kycapp/validators/kyc"

	"github.com/gofiber/fiber/v2"
)

func SetupKycRoutes(app *fiber.App) {
	app.Get("/", healthController.Root)
	app.Get("/health", healthController.Health)

	app.Post("/register", kycValidator.Register(), kycController.Register)
	app.Get("/customers", kycController.ListCustomers)
	app.Get("/files/*", kycController.GetFile)

	kycGroup := app.Group("/kyc")

	kycGroup.Get("/case", kycController.CreateCase)
	kycGroup.Post("/register", kycValidator.Register(), kycController.KycRegister)
	kycGroup.Post("/upload", kycController.UploadDocument)
	kycGroup.Post("/details", kycValidator.Details(), kycController.SaveDetails)
	kycGroup.Get("/screen-data/:caseId", kycController.ScreenData)
	kycGroup.Get("/progress/:caseId", kycController.Progress)
	kycGroup.Get("/auto-details/:caseId", kycController.AutoDetails)
}
