package archive

import (
	"context"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"

	"trello-sheets-sync/internal/model"
)

const contentType = "application/yaml"

// SaveSnapshot uploads the snapshot as <prefix>/<date>/<run id>.yaml and returns the key.
func (r *implRepository) SaveSnapshot(ctx context.Context, snapshot model.Snapshot) (string, error) {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := path.Join(r.prefix, snapshot.StartedAt.UTC().Format("2006-01-02"), snapshot.RunID+".yaml")
	if err := r.store.Put(ctx, key, data, contentType); err != nil {
		return "", err
	}

	r.l.Infof(ctx, "archive: stored snapshot %s (%d rows)", key, len(snapshot.Rows))
	return key, nil
}
