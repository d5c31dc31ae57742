package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"5000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"5"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"10"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		Host     string `env:"HOST" envDefault:"localhost"`
		Port     string `env:"PORT" envDefault:"5432"`
		User     string `env:"USER" envDefault:"postgres"`
		Password string `env:"PASSWORD,required"`
		Name     string `env:"NAME" envDefault:"company"`
		SSLMode  string `env:"SSLMODE" envDefault:"disable"`
	} `envPrefix:"DB_"`
	JWT struct {
		Secret string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	Redis struct {
		Addr string `env:"ADDR" envDefault:"localhost:6379"`
	} `envPrefix:"REDIS_"`
	Kafka struct {
		Broker string `env:"BROKER" envDefault:"localhost:9092"`
	} `envPrefix:"KAFKA_"`
	Stripe struct {
		SecretKey string `env:"SECRET_KEY"`
		Currency  string `env:"CURRENCY" envDefault:"bdt"`
	} `envPrefix:"STRIPE_"`
	Payment struct {
		// When set, approvals must carry a gateway reference that the
		// gateway reports as succeeded before a payment is marked paid.
		RequireGatewayConfirmation bool `env:"REQUIRE_GATEWAY_CONFIRMATION" envDefault:"false"`
	} `envPrefix:"PAYMENT_"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
