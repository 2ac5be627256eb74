package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultQRSize          = 256
	defaultValidityMinutes = 30
)

type Config struct {
	HTTPAddr string

	// APIKeys is the inbound credential allow-list, passed explicitly to
	// the delivery layer instead of living in package state.
	APIKeys map[string]bool

	StaticQRIS string
	QRSize     int
	Validity   time.Duration

	MerchantID     string
	GatewayBaseURL string
	GatewayAPIKey  string
	UploadURL      string
}

func Load() *Config {
	return &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		APIKeys:        parseKeys(getEnv("API_KEYS", "")),
		StaticQRIS:     getEnv("STATIC_QRIS", ""),
		QRSize:         getEnvInt("QR_SIZE", defaultQRSize),
		Validity:       time.Duration(getEnvInt("EXPIRY_MINUTES", defaultValidityMinutes)) * time.Minute,
		MerchantID:     getEnv("MERCHANT_ID", ""),
		GatewayBaseURL: getEnv("GATEWAY_BASE_URL", "https://gateway.okeconnect.com"),
		GatewayAPIKey:  getEnv("GATEWAY_API_KEY", ""),
		UploadURL:      getEnv("UPLOAD_URL", ""),
	}
}

func parseKeys(raw string) map[string]bool {
	keys := make(map[string]bool)
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys[k] = true
		}
	}
	return keys
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
