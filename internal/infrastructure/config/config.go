package config

import (
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Port int
}

type AWSConfig struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint points the SDK at a local DynamoDB when set
	// (e.g. http://dynamodb:8000).
	Endpoint string
}

type MercadoPagoConfig struct {
	AccessToken string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	AWS         AWSConfig
	MercadoPago MercadoPagoConfig
}

// Load reads configuration from the environment (godotenv fills it from
// .env in main). Every value has a local-friendly default; nothing is
// strictly required so the service boots against a local DynamoDB with an
// empty environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Port: v.GetInt("HTTP_PORT"),
		},
		AWS: AWSConfig{
			Region:    v.GetString("AWS_REGION"),
			AccessKey: v.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:  v.GetString("DYNAMODB_ENDPOINT"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	// Local DynamoDB does not validate credentials, but the AWS SDK
	// requires them.
	if cfg.AWS.AccessKey == "" {
		cfg.AWS.AccessKey = "local"
	}
	if cfg.AWS.SecretKey == "" {
		cfg.AWS.SecretKey = "local"
	}

	return cfg, nil
}
