package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Trello: TrelloConfig{Key: "k", Token: "t", Username: "alice"},
		Sheets: SheetsConfig{
			Backend:          SheetsBackendGoogle,
			CredentialsPath:  "credentials.json",
			SpreadsheetID:    "sid",
			SummarySheetName: "Trello",
		},
		Sync: SyncConfig{Delimiter: "|+|"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid google config", func(t *testing.T) {
		if err := validate(validConfig()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Missing trello credentials", func(t *testing.T) {
		cfg := validConfig()
		cfg.Trello.Token = ""
		cfg.Trello.Username = ""
		err := validate(cfg)
		if err == nil || !strings.Contains(err.Error(), "trello.token") || !strings.Contains(err.Error(), "trello.username") {
			t.Errorf("expected both trello errors, got %v", err)
		}
	})

	t.Run("Google backend needs a spreadsheet", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sheets.SpreadsheetID = ""
		if err := validate(cfg); err == nil || !strings.Contains(err.Error(), "spreadsheet_id") {
			t.Errorf("expected spreadsheet error, got %v", err)
		}
	})

	t.Run("XLSX backend ignores google settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sheets = SheetsConfig{Backend: SheetsBackendXLSX, XLSXPath: "out.xlsx", SummarySheetName: "Trello"}
		if err := validate(cfg); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Unknown backend", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sheets.Backend = "csv"
		if err := validate(cfg); err == nil || !strings.Contains(err.Error(), "csv") {
			t.Errorf("expected backend error, got %v", err)
		}
	})

	t.Run("Archive needs a bucket", func(t *testing.T) {
		cfg := validConfig()
		cfg.Archive.Enabled = true
		if err := validate(cfg); err == nil || !strings.Contains(err.Error(), "archive.bucket") {
			t.Errorf("expected archive error, got %v", err)
		}
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRELLO_KEY", "key")
	t.Setenv("TRELLO_TOKEN", "token")
	t.Setenv("TRELLO_USERNAME", "alice")
	t.Setenv("SHEETS_BACKEND", "XLSX")
	t.Setenv("SYNC_INSERT_CARD_STICKERS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Trello.Username != "alice" || cfg.Sheets.Backend != SheetsBackendXLSX {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Trello.BaseURL != "https://api.trello.com/1" || cfg.Trello.Timeout != 30*time.Second || cfg.Trello.RateLimitPerSec != 10 {
		t.Errorf("unexpected trello defaults %+v", cfg.Trello)
	}
	if cfg.Trello.SkipLastBoard {
		t.Errorf("full board count must be the default")
	}
	if !cfg.Sync.InsertCardStickers || !cfg.Sync.AddBoardSheets || cfg.Sync.Delimiter != "|+|" {
		t.Errorf("unexpected sync config %+v", cfg.Sync)
	}
	if cfg.Sheets.SummarySheetName != "Trello" || cfg.Sheets.XLSXPath != "trello.xlsx" {
		t.Errorf("unexpected sheets defaults %+v", cfg.Sheets)
	}
}
