package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceDynamoDB = "dynamodb"
)

// Config holds every environment driven setting of the service.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - APP_ENV (default: production; "development" enables the dev logger)
//   - CATALOG_SOURCE (static | dynamodb, default: static)
//   - PRODUCTS_TABLE (default: products)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - GEMINI_API_KEY, GEMINI_MODEL, ADVISORY_TIMEOUT, ADVISORY_MOCK
//   - MERCADOPAGO_ACCESS_TOKEN, PAYMENT_GATEWAY_MOCK
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST
type Config struct {
	Port   int
	AppEnv string

	CatalogSource string
	ProductsTable string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	GeminiAPIKey    string
	GeminiModel     string
	AdvisoryTimeout time.Duration
	AdvisoryMock    bool
	AdvisoryRPS     float64

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port:   getenvInt("PORT", 8080),
		AppEnv: getenvDefault("APP_ENV", "production"),

		CatalogSource: strings.ToLower(getenvDefault("CATALOG_SOURCE", CatalogSourceStatic)),
		ProductsTable: getenvDefault("PRODUCTS_TABLE", "products"),

		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     getenvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		AdvisoryTimeout: getenvDuration("ADVISORY_TIMEOUT", 8*time.Second),
		AdvisoryMock:    getenvBool("ADVISORY_MOCK"),
		AdvisoryRPS:     getenvFloat("ADVISORY_RPS", 2),

		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),

		RateLimitRPS:   getenvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getenvInt("RATE_LIMIT_BURST", 10),
	}
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getenvDefault(key, ""), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getenvDefault(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
