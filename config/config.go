package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SheetsBackendGoogle = "google"
	SheetsBackendXLSX   = "xlsx"
)

// Config holds all service configuration. It is built once by Load and
// passed down by value; nothing reads viper after Load returns.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Sync
	Trello TrelloConfig
	Sheets SheetsConfig
	Sync   SyncConfig

	// Trigger endpoints
	Trigger TriggerConfig

	// Optional snapshot upload
	Archive ArchiveConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TrelloConfig struct {
	Key      string
	Token    string
	BaseURL  string
	Username string

	// SkipLastBoard restores the historical board loop that stopped one short of the count.
	SkipLastBoard   bool
	RateLimitPerSec float64
	Timeout         time.Duration
}

type SheetsConfig struct {
	Backend          string // google | xlsx
	CredentialsPath  string
	TokenPath        string
	SpreadsheetID    string
	WriteRatePerSec  float64
	XLSXPath         string
	SummarySheetName string
}

type SyncConfig struct {
	InsertCardStickers bool
	AddBoardSheets     bool
	Delimiter          string
}

type TriggerConfig struct {
	Secret          string
	RateLimitPerMin int
}

type ArchiveConfig struct {
	Enabled      bool
	Endpoint     string
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	Prefix       string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Trello
	cfg.Trello.Key = viper.GetString("trello.key")
	cfg.Trello.Token = viper.GetString("trello.token")
	cfg.Trello.BaseURL = viper.GetString("trello.base_url")
	cfg.Trello.Username = viper.GetString("trello.username")
	cfg.Trello.SkipLastBoard = viper.GetBool("trello.skip_last_board")
	cfg.Trello.RateLimitPerSec = viper.GetFloat64("trello.rate_limit_per_sec")
	cfg.Trello.Timeout = viper.GetDuration("trello.timeout")

	// Sheets
	cfg.Sheets.Backend = strings.ToLower(viper.GetString("sheets.backend"))
	cfg.Sheets.CredentialsPath = viper.GetString("sheets.credentials_path")
	if googleCreds := viper.GetString("google_application_credentials"); googleCreds != "" && cfg.Sheets.CredentialsPath == "" {
		cfg.Sheets.CredentialsPath = googleCreds
	}
	cfg.Sheets.TokenPath = viper.GetString("sheets.token_path")
	cfg.Sheets.SpreadsheetID = viper.GetString("sheets.spreadsheet_id")
	cfg.Sheets.WriteRatePerSec = viper.GetFloat64("sheets.write_rate_per_sec")
	cfg.Sheets.XLSXPath = viper.GetString("sheets.xlsx_path")
	cfg.Sheets.SummarySheetName = viper.GetString("sheets.summary_sheet_name")

	// Sync behaviour
	cfg.Sync.InsertCardStickers = viper.GetBool("sync.insert_card_stickers")
	cfg.Sync.AddBoardSheets = viper.GetBool("sync.add_board_sheets")
	cfg.Sync.Delimiter = viper.GetString("sync.delimiter")

	// Trigger endpoints
	cfg.Trigger.Secret = viper.GetString("trigger.secret")
	cfg.Trigger.RateLimitPerMin = viper.GetInt("trigger.rate_limit_per_min")

	// Archive
	cfg.Archive.Enabled = viper.GetBool("archive.enabled")
	cfg.Archive.Endpoint = viper.GetString("archive.endpoint")
	cfg.Archive.Bucket = viper.GetString("archive.bucket")
	cfg.Archive.Region = viper.GetString("archive.region")
	cfg.Archive.AccessKey = viper.GetString("archive.access_key")
	cfg.Archive.SecretKey = viper.GetString("archive.secret_key")
	cfg.Archive.UsePathStyle = viper.GetBool("archive.use_path_style")
	cfg.Archive.Prefix = viper.GetString("archive.prefix")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("trello.base_url", "https://api.trello.com/1")
	viper.SetDefault("trello.skip_last_board", false)
	viper.SetDefault("trello.rate_limit_per_sec", 10)
	viper.SetDefault("trello.timeout", "30s")

	viper.SetDefault("sheets.backend", SheetsBackendGoogle)
	viper.SetDefault("sheets.token_path", "token.json")
	viper.SetDefault("sheets.write_rate_per_sec", 1)
	viper.SetDefault("sheets.xlsx_path", "trello.xlsx")
	viper.SetDefault("sheets.summary_sheet_name", "Trello")

	viper.SetDefault("sync.insert_card_stickers", false)
	viper.SetDefault("sync.add_board_sheets", true)
	viper.SetDefault("sync.delimiter", "|+|")

	viper.SetDefault("trigger.rate_limit_per_min", 30)

	viper.SetDefault("archive.enabled", false)
	viper.SetDefault("archive.region", "us-east-1")
	viper.SetDefault("archive.prefix", "snapshots")
}

// validate checks the values a sync cannot start without.
func validate(cfg *Config) error {
	var errs []error

	if cfg.Trello.Key == "" || cfg.Trello.Token == "" {
		errs = append(errs, errors.New("trello.key and trello.token are required"))
	}
	if cfg.Trello.Username == "" {
		errs = append(errs, errors.New("trello.username is required"))
	}

	switch cfg.Sheets.Backend {
	case SheetsBackendGoogle:
		if cfg.Sheets.SpreadsheetID == "" {
			errs = append(errs, errors.New("sheets.spreadsheet_id is required for the google backend"))
		}
		if cfg.Sheets.CredentialsPath == "" {
			errs = append(errs, errors.New("sheets.credentials_path is required for the google backend"))
		}
	case SheetsBackendXLSX:
		if cfg.Sheets.XLSXPath == "" {
			errs = append(errs, errors.New("sheets.xlsx_path is required for the xlsx backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown sheets.backend %q (want %s or %s)", cfg.Sheets.Backend, SheetsBackendGoogle, SheetsBackendXLSX))
	}

	if cfg.Sheets.SummarySheetName == "" {
		errs = append(errs, errors.New("sheets.summary_sheet_name must not be empty"))
	}
	if cfg.Sync.Delimiter == "" {
		errs = append(errs, errors.New("sync.delimiter must not be empty"))
	}
	if cfg.Archive.Enabled && cfg.Archive.Bucket == "" {
		errs = append(errs, errors.New("archive.bucket is required when archive.enabled is true"))
	}

	return errors.Join(errs...)
}
