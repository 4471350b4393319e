package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "":
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	case "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		level, parseErr := zerolog.ParseLevel(levelStr)
		if parseErr != nil {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
		} else {
			zerolog.SetGlobalLevel(level)
		}
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// Settings selects where sheets are read from and where translated tables go.
type Settings struct {
	TranslationPath string

	Source          string // "xlsx" or "sheets"
	InputFile       string
	SpreadsheetID   string
	CredentialsFile string

	Output              string // "csv", "xlsx" or "sheets"
	OutputDir           string
	OutputFile          string
	OutputSpreadsheetID string
	OutputTabPrefix     string

	NotifyEnabled  bool
	NotifyURL      string
	NotifyTopic    string
	NotifyPriority string
}

// LoadSettings reads Settings from the environment and checks that the
// selected source and output have what they need.
func LoadSettings() (Settings, error) {
	s := Settings{
		TranslationPath:     GetEnvWithDefault("TRANSLATION_CONFIG", "translation.yaml"),
		Source:              strings.ToLower(GetEnvWithDefault("SOURCE", "xlsx")),
		InputFile:           GetEnvWithDefault("INPUT_FILE", "issues.xlsx"),
		SpreadsheetID:       os.Getenv("SPREADSHEET_ID"),
		CredentialsFile:     GetEnvWithDefault("GOOGLE_CREDENTIALS", "credentials.json"),
		Output:              strings.ToLower(GetEnvWithDefault("OUTPUT", "csv")),
		OutputDir:           GetEnvWithDefault("OUTPUT_DIR", "."),
		OutputFile:          GetEnvWithDefault("OUTPUT_FILE", "issues-translated.xlsx"),
		OutputSpreadsheetID: os.Getenv("OUTPUT_SPREADSHEET_ID"),
		OutputTabPrefix:     GetEnvWithDefault("OUTPUT_TAB_PREFIX", "translated-"),
		NotifyEnabled:       GetEnvWithDefault("NTFY_ENABLED", "false") == "true",
		NotifyURL:           GetEnvWithDefault("NTFY_URL", "https://ntfy.sh"),
		NotifyTopic:         GetEnvWithDefault("NTFY_TOPIC", "issue-translator"),
		NotifyPriority:      os.Getenv("NTFY_PRIORITY"),
	}

	switch s.Source {
	case "xlsx":
	case "sheets":
		if s.SpreadsheetID == "" {
			return s, fmt.Errorf("SPREADSHEET_ID environment variable is required for SOURCE=sheets")
		}
	default:
		return s, fmt.Errorf("unknown SOURCE %q (want xlsx or sheets)", s.Source)
	}

	switch s.Output {
	case "csv", "xlsx":
	case "sheets":
		if s.OutputSpreadsheetID == "" {
			return s, fmt.Errorf("OUTPUT_SPREADSHEET_ID environment variable is required for OUTPUT=sheets")
		}
	default:
		return s, fmt.Errorf("unknown OUTPUT %q (want csv, xlsx or sheets)", s.Output)
	}

	return s, nil
}

// GetEnvWithDefault fetches an environment variable with a default fallback.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
