package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	OutputDir string
	LogLevel  string

	ListingBaseURL string
	ProxyHost      string
	ProxyUsername  string
	ProxyPassword  string
	ProxyVerifyURL string

	ScrapePages   int
	ScrapeDelayMs int
	HTTPTimeoutMs int

	// ReferenceDate pins age and zodiac computation so reruns over the same
	// profiles produce identical rows.
	ReferenceDate time.Time
}

const defaultReferenceDate = "2025-10-21"

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		ListingBaseURL: getEnv("LISTING_BASE_URL", "https://www.fbi.gov/wanted/fugitives"),
		ProxyHost:      getEnv("PROXY_HOST", "gate.decodo.com:10001"),
		ProxyUsername:  getEnv("PROXY_USERNAME", ""),
		ProxyPassword:  getEnv("PROXY_PASSWORD", ""),
		ProxyVerifyURL: getEnv("PROXY_VERIFY_URL", "https://ip.decodo.com/json"),

		ScrapePages:   getEnvInt("SCRAPE_PAGES", 1),
		ScrapeDelayMs: getEnvInt("SCRAPE_DELAY_MS", 2000),
		HTTPTimeoutMs: getEnvInt("HTTP_TIMEOUT_MS", 30000),
	}

	ref := getEnv("REFERENCE_DATE", defaultReferenceDate)
	parsed, err := time.Parse("2006-01-02", ref)
	if err != nil {
		return Config{}, fmt.Errorf("invalid REFERENCE_DATE %q: %w", ref, err)
	}
	cfg.ReferenceDate = parsed

	return cfg, nil
}

// ProxyURL assembles the authenticated proxy URL. Empty when no proxy
// credentials are configured.
func (c Config) ProxyURL() *url.URL {
	if strings.TrimSpace(c.ProxyUsername) == "" {
		return nil
	}
	return &url.URL{
		Scheme: "http",
		User:   url.UserPassword(c.ProxyUsername, c.ProxyPassword),
		Host:   c.ProxyHost,
	}
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
