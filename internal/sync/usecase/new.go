package usecase

import (
	goSync "sync"
	"time"

	"github.com/google/uuid"

	"trello-sheets-sync/internal/model"
	"trello-sheets-sync/internal/sync"
	"trello-sheets-sync/internal/sync/repository"
	pkgLog "trello-sheets-sync/pkg/log"
)

// Options is the immutable run configuration, built once at startup.
type Options struct {
	Username           string
	SummarySheetName   string
	Delimiter          string
	InsertCardStickers bool
	AddBoardSheets     bool
	// SkipLastBoard reproduces the legacy `count - 1` board enumeration bound.
	SkipLastBoard bool
}

type implUseCase struct {
	// mu serializes runs: writers keep per-workbook state that is not safe for concurrent use.
	mu goSync.Mutex

	l         pkgLog.Logger
	boards    repository.BoardRepository
	sheets    repository.SheetWriter
	snapshots repository.SnapshotRepository
	opts      Options
	newRunID  func() string
	now       func() time.Time
}

// New creates a new sync UseCase instance. snapshots may be nil.
func New(
	l pkgLog.Logger,
	boards repository.BoardRepository,
	sheets repository.SheetWriter,
	snapshots repository.SnapshotRepository,
	opts Options,
) sync.UseCase {
	if opts.Delimiter == "" {
		opts.Delimiter = model.DefaultDelimiter
	}
	if opts.SummarySheetName == "" {
		opts.SummarySheetName = DefaultSummarySheetName
	}
	return &implUseCase{
		l:         l,
		boards:    boards,
		sheets:    sheets,
		snapshots: snapshots,
		opts:      opts,
		newRunID:  uuid.NewString,
		now:       time.Now,
	}
}
