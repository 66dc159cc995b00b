package trello

import (
	"trello-sheets-sync/internal/sync/repository"
	pkgLog "trello-sheets-sync/pkg/log"
	pkgTrello "trello-sheets-sync/pkg/trello"
)

type implRepository struct {
	client *pkgTrello.Client
	l      pkgLog.Logger
}

var _ repository.BoardRepository = (*implRepository)(nil)

// New creates a BoardRepository backed by the Trello REST API.
func New(client *pkgTrello.Client, l pkgLog.Logger) repository.BoardRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
