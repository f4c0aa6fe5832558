package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// HTTP server
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Twilio messaging configuration
	TwilioAccountSID   string `yaml:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `yaml:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `yaml:"TWILIO_WHATSAPP_FROM"`
	TwilioWATemplate   string `yaml:"TWILIO_WA_TEMPLATE_SID"`
	TwilioSMSFrom      string `yaml:"TWILIO_SMS_FROM"`

	// Alert scheduling
	AlertTimezone     string `yaml:"ALERT_TIMEZONE"`
	CronExpiringSoon  string `yaml:"CRON_EXPIRING_SOON"`
	CronExpiringToday string `yaml:"CRON_EXPIRING_TODAY"`
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

	// Keys that should also be reachable via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
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
	case "JWT_SECRET":
		return config.JWTSecret
	case "TWILIO_ACCOUNT_SID":
		return config.TwilioAccountSID
	case "TWILIO_AUTH_TOKEN":
		return config.TwilioAuthToken
	case "TWILIO_WHATSAPP_FROM":
		return config.TwilioWhatsAppFrom
	case "TWILIO_WA_TEMPLATE_SID":
		return config.TwilioWATemplate
	case "TWILIO_SMS_FROM":
		return config.TwilioSMSFrom
	case "ALERT_TIMEZONE":
		return config.AlertTimezone
	case "CRON_EXPIRING_SOON":
		return config.CronExpiringSoon
	case "CRON_EXPIRING_TODAY":
		return config.CronExpiringToday
	default:
		return ""
	}
}
