package archive

import (
	"context"

	"trello-sheets-sync/internal/sync/repository"
	pkgLog "trello-sheets-sync/pkg/log"
)

const DefaultPrefix = "snapshots"

// objectStore is satisfied by *pkgArchive.Client.
type objectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

type implRepository struct {
	store  objectStore
	prefix string
	l      pkgLog.Logger
}

var _ repository.SnapshotRepository = (*implRepository)(nil)

// New creates a SnapshotRepository writing YAML documents under prefix.
func New(store objectStore, prefix string, l pkgLog.Logger) repository.SnapshotRepository {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &implRepository{
		store:  store,
		prefix: prefix,
		l:      l,
	}
}
