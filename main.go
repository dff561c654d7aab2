package main

import (
	"context"
	"log"

	"kycapp/config"
	"kycapp/database"
	"kycapp/extraction"
	kycRoutes "kycapp/routers/kycRoutes"
	"kycapp/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if config.AppConfig.StorageBackend == "gcs" {
		gcsStorage, err := storage.NewGCSStorage(context.Background(), config.AppConfig.GCSBucket)
		if err != nil {
			log.Fatalf("Failed to initialize GCS storage: %v", err)
		}
		storage.Active = gcsStorage
	} else {
		storage.Active = storage.NewDiskStorage(config.AppConfig.UploadDir)
	}

	if config.AppConfig.ExtractorMode == "ocr" && config.AppConfig.OCRApiURL != "" {
		extraction.Current = extraction.NewOCRExtractor(config.AppConfig.OCRApiURL, config.AppConfig.OCRApiKey)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: config.AppConfig.MaxFileSize + 1024*1024, // headroom for multipart framing
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	kycRoutes.SetupKycRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
