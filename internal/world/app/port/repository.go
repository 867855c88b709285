package port

import (
	"context"

	"KingdomsMap/internal/world/entity"
)

// SnapshotSource 提供原始快照文本（上游 API 或本地文件）。
type SnapshotSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// SnapshotArchive 保存原始快照。没有任何快照时 Latest 返回 app.ErrNoSnapshot。
type SnapshotArchive interface {
	Save(ctx context.Context, rec entity.SnapshotRecord) error
	Latest(ctx context.Context) (entity.SnapshotRecord, error)
}

// StatsRepository 保存王国汇总历史。
type StatsRepository interface {
	SaveStats(ctx context.Context, stats []entity.KingdomStat) error
	History(ctx context.Context, kid entity.KingdomID, limit int) ([]entity.KingdomStat, error)
}
