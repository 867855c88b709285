// Package memory 提供进程内的归档与统计实现，未配置数据库时使用。
package memory

import (
	"context"
	"slices"
	"sync"

	"KingdomsMap/internal/world/app"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/infra/persistence/codec"
)

type SnapshotArchive struct {
	mu      sync.Mutex
	records []entity.SnapshotRecord
}

func NewSnapshotArchive() *SnapshotArchive {
	return &SnapshotArchive{}
}

func (r *SnapshotArchive) Save(_ context.Context, rec entity.SnapshotRecord) error {
	if rec.Digest == "" {
		rec.Digest = codec.Digest(rec.Raw)
	}
	rec.Raw = slices.Clone(rec.Raw)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, old := range r.records {
		if old.Digest == rec.Digest {
			return nil
		}
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *SnapshotArchive) Latest(_ context.Context) (entity.SnapshotRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) == 0 {
		return entity.SnapshotRecord{}, app.ErrNoSnapshot
	}
	latest := r.records[0]
	for _, rec := range r.records[1:] {
		if !rec.FetchedAt.Before(latest.FetchedAt) {
			latest = rec
		}
	}
	latest.Raw = slices.Clone(latest.Raw)
	return latest, nil
}

func (r *SnapshotArchive) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
