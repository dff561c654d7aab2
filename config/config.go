package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	StorageBackend string // "disk" or "gcs"
	UploadDir      string
	GCSBucket      string

	MaxFileSize int // upload size cap in bytes

	ExtractorMode string // "mock" or "ocr"
	OCRApiURL     string
	OCRApiKey     string

	EmailSender string
	Password    string // SMTP password
}

// AllowedExtensions is the upload extension allow-list
var AllowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".pdf": true,
	".doc": true, ".docx": true,
	".mp4": true, ".avi": true, ".mov": true, ".webm": true, ".mkv": true,
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "kycdb"),
		DBPort:     getEnv("DB_PORT", "5432"),

		StorageBackend: getEnv("STORAGE_BACKEND", "disk"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		GCSBucket:      getEnv("GCS_BUCKET", ""),

		MaxFileSize: getEnvInt("MAX_FILE_SIZE", 50*1024*1024),

		ExtractorMode: getEnv("EXTRACTOR_MODE", "mock"),
		OCRApiURL:     getEnv("OCR_API_URL", ""),
		OCRApiKey:     getEnv("OCR_API_KEY", ""),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.StorageBackend == "gcs" && AppConfig.GCSBucket == "" {
		log.Println("Warning: STORAGE_BACKEND=gcs but GCS_BUCKET is empty. Uploads will fail.")
	}
	if AppConfig.ExtractorMode == "ocr" && AppConfig.OCRApiURL == "" {
		log.Println("Warning: EXTRACTOR_MODE=ocr but OCR_API_URL is empty. Falling back to mock extraction.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
