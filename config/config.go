package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/epeers/portfoliocalc/internal/repository"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	DataSource       string
	DataDir          string
	InvestmentsFile  string
	TransactionsFile string
	QuotesFile       string
	CSVDelimiter     rune
	PGURL            string
	Port             string
	Workers          int
	LogLevel         log.Level
	LogFormat        string
	Locale           language.Tag
}

// Load reads configuration from environment variables. A .env file in the
// working directory is read first; variables already set in the shell win.
func Load() (*Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	cfg := &Config{
		DataSource: getEnv("DATA_SOURCE", DataSourceCSV),
		DataDir:    getEnv("DATA_DIR", repository.DefaultDataDir),
		PGURL:      os.Getenv("PG_URL"),
		Port:       getEnv("PORT", "8080"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
	}
	cfg.InvestmentsFile = getEnv("INVESTMENTS_FILE", filepath.Join(cfg.DataDir, repository.InvestmentsFileName))
	cfg.TransactionsFile = getEnv("TRANSACTIONS_FILE", filepath.Join(cfg.DataDir, repository.TransactionsFileName))
	cfg.QuotesFile = getEnv("QUOTES_FILE", filepath.Join(cfg.DataDir, repository.QuotesFileName))

	switch cfg.DataSource {
	case DataSourceCSV:
	case DataSourcePostgres:
		if cfg.PGURL == "" {
			return nil, fmt.Errorf("PG_URL environment variable is required when DATA_SOURCE=%s", DataSourcePostgres)
		}
	default:
		return nil, fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", DataSourceCSV, DataSourcePostgres, cfg.DataSource)
	}

	delimiter := getEnv("CSV_DELIMITER", string(repository.DefaultDelimiter))
	if utf8.RuneCountInString(delimiter) != 1 {
		return nil, fmt.Errorf("CSV_DELIMITER must be a single character, got %q", delimiter)
	}
	cfg.CSVDelimiter, _ = utf8.DecodeRuneInString(delimiter)

	if raw := os.Getenv("WORKERS"); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil || workers < 0 {
			return nil, fmt.Errorf("WORKERS must be a non-negative integer, got %q", raw)
		}
		cfg.Workers = workers
	}

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	locale, err := language.Parse(getEnv("LOCALE", "en"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCALE: %w", err)
	}
	cfg.Locale = locale

	return cfg, nil
}

// ConfigureLogging applies the log level and format to the standard logger
func (c *Config) ConfigureLogging() {
	log.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
