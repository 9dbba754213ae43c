// Package config loads process configuration from the environment.
package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every environment-provided setting for the server process.
type Config struct {
	Env           string `env:"JECATI_ENV" env-default:"development"`
	Addr          string `env:"JECATI_ADDR" env-default:":5600"`
	DBPath        string `env:"JECATI_DB_PATH" env-default:"jecati.db"`
	BaseURL       string `env:"JECATI_BASE_URL" env-default:"http://localhost:5600"`
	UploadDir     string `env:"JECATI_UPLOAD_DIR" env-default:"static/images/uploads"`
	StaticDir     string `env:"JECATI_STATIC_DIR" env-default:"static"`
	CSRFKey       string `env:"JECATI_CSRF_KEY"`
	ResendKey     string `env:"JECATI_RESEND_KEY"`
	EmailFrom     string `env:"JECATI_EMAIL_FROM" env-default:"Jecati Construction Services <noreply@jecati.ph>"`
	EmailReplyTo  string `env:"JECATI_REPLY_TO" env-default:"inquiries@jecati.ph"`
	BusinessInbox string `env:"JECATI_BUSINESS_INBOX" env-default:"inquiries@jecati.ph"`
}

// MustLoad reads configuration from the environment and exits on failure.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
