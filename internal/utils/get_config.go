package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	ServerPort string `yaml:"SERVER_PORT"`

	// Storage configuration
	StorageDriver string `yaml:"STORAGE_DRIVER"` // sqlite | postgres | memory
	SQLitePath    string `yaml:"SQLITE_PATH"`
	DBUser        string `yaml:"DB_USER"`
	DBName        string `yaml:"DB_NAME"`
	DBPassword    string `yaml:"DB_PASSWORD"`
	DBPort        string `yaml:"DB_PORT"`
	DBHost        string `yaml:"DB_HOST"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`

	// Barcode product database
	ProductLookupURL string `yaml:"PRODUCT_LOOKUP_URL"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	DigestRecipient  string `yaml:"DIGEST_RECIPIENT"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("GEMINI_API_KEY", config.GeminiAPIKey)
	os.Setenv("GEMINI_MODEL", config.GeminiModel)
	os.Setenv("PRODUCT_LOOKUP_URL", config.ProductLookupURL)
}

func GetConfig(key string) string {
	switch key {
	case "SERVER_PORT":
		return config.ServerPort
	case "STORAGE_DRIVER":
		return config.StorageDriver
	case "SQLITE_PATH":
		return config.SQLitePath
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "PRODUCT_LOOKUP_URL":
		return config.ProductLookupURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "DIGEST_RECIPIENT":
		return config.DigestRecipient
	default:
		return ""
	}
}
