package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults mirroring the landing page's deployment.
const (
	DefaultModel           = "gpt-4o-mini"
	DefaultPrecheckWindow  = 30 * time.Second
	DefaultPrecheckMax     = 4
	DefaultContactWhatsApp = "+51964273326"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port            string
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	PrecheckWindow  time.Duration
	PrecheckMax     int
	ContactWhatsApp string
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints. A missing API key is not fatal here: the precheck
// endpoint reports the configuration error per request instead.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:            envDefault("PORT", "8080"),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:     envDefault("OPENAI_MODEL", DefaultModel),
		OpenAIBaseURL:   strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		PrecheckWindow:  DefaultPrecheckWindow,
		PrecheckMax:     DefaultPrecheckMax,
		ContactWhatsApp: envDefault("CONTACT_WHATSAPP", DefaultContactWhatsApp),
	}
	if raw := strings.TrimSpace(os.Getenv("PRECHECK_WINDOW_MS")); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("PRECHECK_WINDOW_MS must be a positive integer")
		}
		cfg.PrecheckWindow = time.Duration(ms) * time.Millisecond
	}
	if raw := strings.TrimSpace(os.Getenv("PRECHECK_MAX_ATTEMPTS")); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil || max <= 0 {
			return Config{}, fmt.Errorf("PRECHECK_MAX_ATTEMPTS must be a positive integer")
		}
		cfg.PrecheckMax = max
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
