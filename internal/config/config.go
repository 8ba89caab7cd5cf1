package config

import (
	"fmt"
	"strings"

	env "github.com/caarlos0/env/v11"
)

// InvalidResponsePolicy decides what a sync does when the gateway answers
// with a non-200 status or a payload without a status.
type InvalidResponsePolicy string

const (
	// InvalidResponseIgnore treats the answer as "not settled yet".
	InvalidResponseIgnore InvalidResponsePolicy = "ignore"
	// InvalidResponseError surfaces the answer to the caller.
	InvalidResponseError InvalidResponsePolicy = "error"
)

type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type MercadoPagoConfig struct {
	AccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock        bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

// SyncConfig holds the settings of the payment status sync.
//
// PaymentModel names the DynamoDB table holding the host's payments.
// PaidUseCase and RejectedUseCase name registered outcome handlers.
type SyncConfig struct {
	PaymentModel          string                `env:"PAYMENT_MODEL" envDefault:"payments"`
	ReferencePrefix       string                `env:"REFERENCE_PREFIX"`
	PaidUseCase           string                `env:"PAID_USECASE" envDefault:"log"`
	RejectedUseCase       string                `env:"REJECTED_USECASE" envDefault:"log"`
	InvalidResponsePolicy InvalidResponsePolicy `env:"INVALID_RESPONSE_POLICY" envDefault:"ignore"`
	EventsChannel         string                `env:"PAYMENT_EVENTS_CHANNEL" envDefault:"payments.events"`
}

type CustomerConfig struct {
	Retries int `env:"CUSTOMER_RETRIES" envDefault:"3"`
}

type BankListConfig struct {
	CacheKey string `env:"BANK_LIST_CACHE_KEY" envDefault:"mercadopago:bank_list"`
}

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AWS         AWSConfig
	Redis       RedisConfig
	MercadoPago MercadoPagoConfig
	Sync        SyncConfig
	Customer    CustomerConfig
	BankList    BankListConfig
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Sync.InvalidResponsePolicy = InvalidResponsePolicy(strings.ToLower(strings.TrimSpace(string(c.Sync.InvalidResponsePolicy))))
	switch c.Sync.InvalidResponsePolicy {
	case InvalidResponseIgnore, InvalidResponseError:
	default:
		return fmt.Errorf("invalid INVALID_RESPONSE_POLICY %q", c.Sync.InvalidResponsePolicy)
	}
	if strings.TrimSpace(c.Sync.PaymentModel) == "" {
		return fmt.Errorf("PAYMENT_MODEL cannot be empty")
	}
	if c.Customer.Retries < 0 {
		return fmt.Errorf("CUSTOMER_RETRIES must not be negative")
	}
	return nil
}
