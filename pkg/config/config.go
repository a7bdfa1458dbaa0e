package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	APIBaseURL   string `envconfig:"API_BASE_URL" default:"http://localhost:8000/api"`
	ReceiptDir   string `envconfig:"RECEIPT_DIR" default:"receipts"`
	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:""` // empty disables event publishing
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
