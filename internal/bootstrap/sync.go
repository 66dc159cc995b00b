// Package bootstrap builds the sync use case from configuration. Both the
// HTTP server and the CLI start from here.
package bootstrap

import (
	"context"
	"fmt"

	"trello-sheets-sync/config"
	"trello-sheets-sync/internal/sync"
	"trello-sheets-sync/internal/sync/repository"
	archiveRepo "trello-sheets-sync/internal/sync/repository/archive"
	gsheetsRepo "trello-sheets-sync/internal/sync/repository/gsheets"
	trelloRepo "trello-sheets-sync/internal/sync/repository/trello"
	xlsxRepo "trello-sheets-sync/internal/sync/repository/xlsx"
	"trello-sheets-sync/internal/sync/usecase"
	pkgArchive "trello-sheets-sync/pkg/archive"
	"trello-sheets-sync/pkg/gsheets"
	"trello-sheets-sync/pkg/log"
	"trello-sheets-sync/pkg/trello"
)

// NewSyncUseCase wires the Trello client, the configured sheet backend and
// the optional snapshot archive into a sync.UseCase.
func NewSyncUseCase(ctx context.Context, cfg *config.Config, l log.Logger) (sync.UseCase, error) {
	trelloClient, err := trello.NewClient(trello.Config{
		BaseURL:   cfg.Trello.BaseURL,
		Key:       cfg.Trello.Key,
		Token:     cfg.Trello.Token,
		RateLimit: cfg.Trello.RateLimitPerSec,
		Timeout:   cfg.Trello.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("trello client: %w", err)
	}
	boards := trelloRepo.New(trelloClient, l)

	sheets, err := NewSheetWriter(ctx, cfg.Sheets, l)
	if err != nil {
		return nil, err
	}

	var snapshots repository.SnapshotRepository
	if cfg.Archive.Enabled {
		snapshots, err = newSnapshotRepository(ctx, cfg.Archive, l)
		if err != nil {
			return nil, err
		}
	}

	return usecase.New(l, boards, sheets, snapshots, usecase.Options{
		Username:           cfg.Trello.Username,
		SummarySheetName:   cfg.Sheets.SummarySheetName,
		Delimiter:          cfg.Sync.Delimiter,
		InsertCardStickers: cfg.Sync.InsertCardStickers,
		AddBoardSheets:     cfg.Sync.AddBoardSheets,
		SkipLastBoard:      cfg.Trello.SkipLastBoard,
	}), nil
}

// NewSheetWriter selects the sheet backend.
func NewSheetWriter(ctx context.Context, cfg config.SheetsConfig, l log.Logger) (repository.SheetWriter, error) {
	switch cfg.Backend {
	case config.SheetsBackendGoogle:
		client, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, gsheets.Config{
			SpreadsheetID: cfg.SpreadsheetID,
			TokenPath:     cfg.TokenPath,
			RateLimit:     cfg.WriteRatePerSec,
		})
		if err != nil {
			return nil, fmt.Errorf("google sheets client: %w", err)
		}
		l.Infof(ctx, "Sheets backend: google spreadsheet %s", cfg.SpreadsheetID)
		return gsheetsRepo.New(client, l), nil

	case config.SheetsBackendXLSX:
		w, err := xlsxRepo.New(xlsxRepo.Config{
			Path:             cfg.XLSXPath,
			SummarySheetName: cfg.SummarySheetName,
		}, l)
		if err != nil {
			return nil, fmt.Errorf("xlsx workbook: %w", err)
		}
		l.Infof(ctx, "Sheets backend: workbook %s", cfg.XLSXPath)
		return w, nil

	default:
		return nil, fmt.Errorf("unknown sheets backend %q", cfg.Backend)
	}
}

func newSnapshotRepository(ctx context.Context, cfg config.ArchiveConfig, l log.Logger) (repository.SnapshotRepository, error) {
	client, err := pkgArchive.NewS3Client(ctx, pkgArchive.Config{
		Endpoint:     cfg.Endpoint,
		Bucket:       cfg.Bucket,
		Region:       cfg.Region,
		AccessKey:    cfg.AccessKey,
		SecretKey:    cfg.SecretKey,
		UsePathStyle: cfg.UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("archive client: %w", err)
	}
	if err := client.EnsureBucket(ctx); err != nil {
		// Snapshots are best effort; a missing bucket only disables them.
		l.Warnf(ctx, "Snapshot archive disabled: %v", err)
		return nil, nil
	}
	l.Infof(ctx, "Snapshot archive: s3://%s/%s", cfg.Bucket, cfg.Prefix)
	return archiveRepo.New(client, cfg.Prefix, l), nil
}
