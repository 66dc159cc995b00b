package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"trello-sheets-sync/config"
	pkgLog "trello-sheets-sync/pkg/log"
)

func TestNewSheetWriter(t *testing.T) {
	ctx := context.Background()
	l := pkgLog.NewNop()

	t.Run("XLSX", func(t *testing.T) {
		w, err := NewSheetWriter(ctx, config.SheetsConfig{
			Backend:          config.SheetsBackendXLSX,
			XLSXPath:         filepath.Join(t.TempDir(), "out.xlsx"),
			SummarySheetName: "Trello",
		}, l)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		names, _ := w.ListSheets(ctx)
		if len(names) != 1 || names[0] != "Trello" {
			t.Errorf("unexpected sheets %v", names)
		}
	})

	t.Run("Google without credentials", func(t *testing.T) {
		_, err := NewSheetWriter(ctx, config.SheetsConfig{
			Backend:         config.SheetsBackendGoogle,
			CredentialsPath: filepath.Join(t.TempDir(), "missing.json"),
			SpreadsheetID:   "sid",
		}, l)
		if err == nil {
			t.Errorf("expected credentials error")
		}
	})

	t.Run("Unknown backend", func(t *testing.T) {
		if _, err := NewSheetWriter(ctx, config.SheetsConfig{Backend: "csv"}, l); err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestNewSyncUseCase(t *testing.T) {
	ctx := context.Background()
	l := pkgLog.NewNop()

	base := func(t *testing.T) *config.Config {
		return &config.Config{
			Trello: config.TrelloConfig{Key: "k", Token: "t", Username: "alice"},
			Sheets: config.SheetsConfig{
				Backend:          config.SheetsBackendXLSX,
				XLSXPath:         filepath.Join(t.TempDir(), "out.xlsx"),
				SummarySheetName: "Trello",
			},
			Sync: config.SyncConfig{Delimiter: "|+|", AddBoardSheets: true},
		}
	}

	t.Run("Missing trello credentials", func(t *testing.T) {
		cfg := base(t)
		cfg.Trello.Token = ""
		if _, err := NewSyncUseCase(ctx, cfg, l); err == nil {
			t.Errorf("expected error")
		}
	})

	t.Run("Unreachable archive bucket is skipped", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		cfg := base(t)
		cfg.Archive = config.ArchiveConfig{
			Enabled:      true,
			Endpoint:     ts.URL,
			Bucket:       "snapshots",
			Region:       "us-east-1",
			AccessKey:    "a",
			SecretKey:    "b",
			UsePathStyle: true,
		}
		uc, err := NewSyncUseCase(ctx, cfg, l)
		if err != nil || uc == nil {
			t.Fatalf("expected use case without archive, got %v", err)
		}
	})
}
