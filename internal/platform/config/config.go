package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// OCRConfig holds the settings for the document-intelligence OCR provider.
type OCRConfig struct {
	Endpoint         string
	APIKey           string
	Model            string
	Timeout          time.Duration
	MaxRetryAttempts int
	RetryDelay       time.Duration
}

// IsValid reports whether the OCR provider is fully configured.
// It is a pure configuration-completeness check and never touches the network.
func (c OCRConfig) IsValid() bool {
	return c.Endpoint != "" && c.APIKey != "" && c.Model != "" &&
		c.Timeout > 0 && c.MaxRetryAttempts > 0
}

// LLMConfig holds the settings for the chat-completion field-extraction provider.
type LLMConfig struct {
	Token            string
	APIURL           string
	Model            string
	MaxTokens        int
	Temperature      float32
	Timeout          time.Duration
	MaxRetryAttempts int
	RetryDelay       time.Duration
}

// IsValid reports whether the extraction provider is fully configured.
func (c LLMConfig) IsValid() bool {
	return c.Token != "" && c.APIURL != "" && c.Model != "" &&
		c.MaxTokens > 0 && c.Timeout > 0 && c.MaxRetryAttempts > 0
}

// ArchiveConfig holds the settings for the document-management system.
type ArchiveConfig struct {
	URL      string
	Username string
	Password string
	BasePath string
}

// IsValid reports whether the archive integration is fully configured.
func (c ArchiveConfig) IsValid() bool {
	return c.URL != "" && c.Username != "" && c.Password != ""
}

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	RateLimit    string

	OCR     OCRConfig
	LLM     LLMConfig
	Archive ArchiveConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.SetDefault("OCR_ENDPOINT", "")
	viper.SetDefault("OCR_API_KEY", "")
	viper.SetDefault("OCR_MODEL", "prebuilt-read")
	viper.SetDefault("OCR_TIMEOUT_SECONDS", 30)
	viper.SetDefault("OCR_MAX_RETRY_ATTEMPTS", 3)
	viper.SetDefault("OCR_RETRY_DELAY_MS", 1000)

	viper.SetDefault("LLM_TOKEN", "")
	viper.SetDefault("LLM_API_URL", "https://router.huggingface.co/v1")
	viper.SetDefault("LLM_MODEL", "meta-llama/Llama-3.1-8B-Instruct:cerebras")
	viper.SetDefault("LLM_MAX_TOKENS", 1000)
	viper.SetDefault("LLM_TEMPERATURE", 0.3)
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 30)
	viper.SetDefault("LLM_MAX_RETRY_ATTEMPTS", 3)
	viper.SetDefault("LLM_RETRY_DELAY_MS", 1000)

	viper.SetDefault("ARCHIVE_URL", "")
	viper.SetDefault("ARCHIVE_USERNAME", "")
	viper.SetDefault("ARCHIVE_PASSWORD", "")
	viper.SetDefault("ARCHIVE_BASE_PATH", "/okm:root/invoices")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.OCR = OCRConfig{
		Endpoint:         viper.GetString("OCR_ENDPOINT"),
		APIKey:           viper.GetString("OCR_API_KEY"),
		Model:            viper.GetString("OCR_MODEL"),
		Timeout:          time.Duration(viper.GetInt("OCR_TIMEOUT_SECONDS")) * time.Second,
		MaxRetryAttempts: viper.GetInt("OCR_MAX_RETRY_ATTEMPTS"),
		RetryDelay:       time.Duration(viper.GetInt("OCR_RETRY_DELAY_MS")) * time.Millisecond,
	}
	if !cfg.OCR.IsValid() {
		log.Println("Warning: OCR provider not fully configured. Document analysis will report itself unavailable.")
	}

	cfg.LLM = LLMConfig{
		Token:            viper.GetString("LLM_TOKEN"),
		APIURL:           viper.GetString("LLM_API_URL"),
		Model:            viper.GetString("LLM_MODEL"),
		MaxTokens:        viper.GetInt("LLM_MAX_TOKENS"),
		Temperature:      float32(viper.GetFloat64("LLM_TEMPERATURE")),
		Timeout:          time.Duration(viper.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second,
		MaxRetryAttempts: viper.GetInt("LLM_MAX_RETRY_ATTEMPTS"),
		RetryDelay:       time.Duration(viper.GetInt("LLM_RETRY_DELAY_MS")) * time.Millisecond,
	}
	if !cfg.LLM.IsValid() {
		log.Println("Warning: LLM provider not fully configured. Field extraction will report itself unavailable.")
	}

	cfg.Archive = ArchiveConfig{
		URL:      viper.GetString("ARCHIVE_URL"),
		Username: viper.GetString("ARCHIVE_USERNAME"),
		Password: viper.GetString("ARCHIVE_PASSWORD"),
		BasePath: viper.GetString("ARCHIVE_BASE_PATH"),
	}
	if !cfg.Archive.IsValid() {
		log.Println("Warning: document archive not fully configured. Upload/download endpoints will be disabled.")
	}

	return cfg, nil
}
