package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	AppAuthKey string
	AppEncKey  string

	EmailHost     string
	EmailPort     string
	EmailUsername string
	EmailPassword string
	EmailFrom     string

	WhatsappPhoneNumberID string
	WhatsappAccessToken   string

	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyGstin   string
	CompanyPan     string

	AppURL   string
	AppEnv   string
	LogLevel string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("no .env file found")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       getenv("APP_PORT", ":8080"),

		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),

		EmailHost:     getenv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:     getenv("EMAIL_PORT", "587"),
		EmailUsername: os.Getenv("EMAIL_USERNAME"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:     os.Getenv("EMAIL_USERNAME"),

		WhatsappPhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		WhatsappAccessToken:   os.Getenv("WHATSAPP_ACCESS_TOKEN"),

		CompanyName:    getenv("COMPANY_NAME", "Vishubh BizBilling"),
		CompanyAddress: getenv("COMPANY_ADDRESS", "40 Feet road, Pune, Maharashtra 411001"),
		CompanyPhone:   getenv("COMPANY_PHONE", "+91 9890691272"),
		CompanyGstin:   getenv("COMPANY_GSTIN", "08AALCR2857A1ZD"),
		CompanyPan:     getenv("COMPANY_PAN", "AVHPC9999A"),

		AppURL:   getenv("APP_URL", "http://localhost:8080"),
		AppEnv:   getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

var LoadENV = LoadEnv()
