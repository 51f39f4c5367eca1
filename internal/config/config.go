package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	ResendAPIKey string `envconfig:"RESEND_API_KEY" default:""`
	MailFrom     string `envconfig:"MAIL_FROM" default:"Marsoom<onboarding@resend.dev>"`

	ImageKitPrivateKey string `envconfig:"IMAGEKIT_PRIVATE_KEY" default:""`
	ImageKitEndpoint   string `envconfig:"IMAGEKIT_ENDPOINT" default:"https://upload.imagekit.io/api/v1"`

	UseEmailReputation bool   `envconfig:"USE_EMAIL_REPUTATION" default:"false"`
	AbstractAPIKey     string `envconfig:"ABSTRACT_EMAIL_API_KEY" default:""`

	ShippingCost float64 `envconfig:"SHIPPING_COST" default:"30"`
}

// Load reads .env (if present) then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
