package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port      string
	JWTSecret string

	Email struct {
		APIKey      string
		FromAddress string
		FromName    string
	}

	Stripe struct {
		SecretKey     string
		WebhookSecret string
		SuccessURL    string
		CancelURL     string
	}

	Push struct {
		AppID  string
		APIKey string
	}

	// Günlük arama kotası sabit bir referans saat dilimine göre hesaplanır
	ReferenceTimezone *time.Location
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.Stripe.SuccessURL = getEnv("STRIPE_SUCCESS_URL", "https://quizpark.app/payment/success?session_id={CHECKOUT_SESSION_ID}")
	cfg.Stripe.CancelURL = getEnv("STRIPE_CANCEL_URL", "https://quizpark.app/payment/cancel")

	cfg.Push.AppID = os.Getenv("ONESIGNAL_APP_ID")
	cfg.Push.APIKey = os.Getenv("ONESIGNAL_API_KEY")

	tz := getEnv("REFERENCE_TIMEZONE", "Europe/Istanbul")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Invalid REFERENCE_TIMEZONE %q, falling back to UTC", tz)
		loc = time.UTC
	}
	cfg.ReferenceTimezone = loc

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
