package xlsx

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"trello-sheets-sync/internal/model"
	"trello-sheets-sync/internal/sync/repository"
	pkgLog "trello-sheets-sync/pkg/log"
)

const (
	DefaultPath         = "trello.xlsx"
	defaultImageTimeout = 15 * time.Second
)

// Config selects the workbook file.
type Config struct {
	Path             string
	SummarySheetName string
	HTTPClient       *http.Client // used to download sticker images
}

type styleKey struct {
	style model.Style
	wrap  bool
}

type implRepository struct {
	file *excelize.File
	path string
	http *http.Client
	l    pkgLog.Logger

	lastRow map[string]int
	styles  map[styleKey]int
}

var _ repository.SheetWriter = (*implRepository)(nil)

// New opens the workbook at cfg.Path, or starts a new one whose default
// sheet is renamed to the summary sheet. Nothing is written until Flush.
func New(cfg Config, l pkgLog.Logger) (repository.SheetWriter, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultImageTimeout}
	}

	f, err := open(cfg)
	if err != nil {
		return nil, err
	}

	return &implRepository{
		file:    f,
		path:    cfg.Path,
		http:    cfg.HTTPClient,
		l:       l,
		lastRow: make(map[string]int),
		styles:  make(map[styleKey]int),
	}, nil
}

func open(cfg Config) (*excelize.File, error) {
	f, err := excelize.OpenFile(cfg.Path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to open workbook %s: %w", cfg.Path, err)
	}

	f = excelize.NewFile()
	if cfg.SummarySheetName != "" {
		if err := f.SetSheetName(f.GetSheetName(0), cfg.SummarySheetName); err != nil {
			return nil, fmt.Errorf("failed to name summary sheet: %w", err)
		}
	}
	return f, nil
}
