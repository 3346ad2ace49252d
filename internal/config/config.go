package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Gemini   GeminiConfig
	Pipeline PipelineConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GeminiConfig holds settings for the Gemini LLM collaborator.
type GeminiConfig struct {
	APIKey          string   `mapstructure:"api_key"`
	Models          []string `mapstructure:"models"`
	TimeoutSecs     int      `mapstructure:"timeout_secs"`
	MaxOutputTokens int      `mapstructure:"max_output_tokens"`
}

// PipelineConfig holds claim-pipeline settings.
type PipelineConfig struct {
	RequiredDocTypes     []string `mapstructure:"required_doc_types"`
	ClassifySnippetChars int      `mapstructure:"classify_snippet_chars"`
	ExtractConcurrency   int      `mapstructure:"extract_concurrency"`
	DateToleranceDays    int      `mapstructure:"date_tolerance_days"`
}

// UploadConfig holds batch intake limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxFiles      int   `mapstructure:"max_files"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the SUPERCLAIMS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SUPERCLAIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Gemini defaults (newest to oldest, fastest to safest)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.models", "gemini-2.5-pro,gemini-2.5-flash,gemini-2.0-flash,gemini-1.5-flash")
	v.SetDefault("gemini.timeout_secs", 120)
	v.SetDefault("gemini.max_output_tokens", 8192)

	// Pipeline defaults
	v.SetDefault("pipeline.required_doc_types", "bill,discharge_summary,id_card")
	v.SetDefault("pipeline.classify_snippet_chars", 2000)
	v.SetDefault("pipeline.extract_concurrency", 4)
	v.SetDefault("pipeline.date_tolerance_days", 30)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)
	v.SetDefault("upload.max_files", 10)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                     "SUPERCLAIMS_SERVER_PORT",
		"server.read_timeout":             "SUPERCLAIMS_SERVER_READ_TIMEOUT",
		"server.write_timeout":            "SUPERCLAIMS_SERVER_WRITE_TIMEOUT",
		"server.environment":              "SUPERCLAIMS_SERVER_ENVIRONMENT",
		"log.level":                       "SUPERCLAIMS_LOG_LEVEL",
		"log.format":                      "SUPERCLAIMS_LOG_FORMAT",
		"gemini.api_key":                  "SUPERCLAIMS_GEMINI_API_KEY",
		"gemini.models":                   "SUPERCLAIMS_GEMINI_MODELS",
		"gemini.timeout_secs":             "SUPERCLAIMS_GEMINI_TIMEOUT_SECS",
		"gemini.max_output_tokens":        "SUPERCLAIMS_GEMINI_MAX_OUTPUT_TOKENS",
		"pipeline.required_doc_types":     "SUPERCLAIMS_PIPELINE_REQUIRED_DOC_TYPES",
		"pipeline.classify_snippet_chars": "SUPERCLAIMS_PIPELINE_CLASSIFY_SNIPPET_CHARS",
		"pipeline.extract_concurrency":    "SUPERCLAIMS_PIPELINE_EXTRACT_CONCURRENCY",
		"pipeline.date_tolerance_days":    "SUPERCLAIMS_PIPELINE_DATE_TOLERANCE_DAYS",
		"upload.max_file_size_mb":         "SUPERCLAIMS_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_files":                "SUPERCLAIMS_UPLOAD_MAX_FILES",
		"cors.allowed_origins":            "SUPERCLAIMS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SUPERCLAIMS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SUPERCLAIMS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:          v.GetString("gemini.api_key"),
		Models:          splitCSV(v.GetString("gemini.models")),
		TimeoutSecs:     v.GetInt("gemini.timeout_secs"),
		MaxOutputTokens: v.GetInt("gemini.max_output_tokens"),
	}
	cfg.Pipeline = PipelineConfig{
		RequiredDocTypes:     splitCSV(v.GetString("pipeline.required_doc_types")),
		ClassifySnippetChars: v.GetInt("pipeline.classify_snippet_chars"),
		ExtractConcurrency:   v.GetInt("pipeline.extract_concurrency"),
		DateToleranceDays:    v.GetInt("pipeline.date_tolerance_days"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxFiles:      v.GetInt("upload.max_files"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitCSV(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
