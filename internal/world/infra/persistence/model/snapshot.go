package model

import (
	"time"

	"KingdomsMap/internal/world/entity"
)

// SnapshotDoc 是 mongodb 中的归档文档，Data 为 zstd 压缩后的原文。
type SnapshotDoc struct {
	Digest    string    `bson:"_id"`
	FetchedAt time.Time `bson:"fetched_at"`
	Size      int       `bson:"size"`
	Data      []byte    `bson:"data"`
}

func SnapshotRecordToDoc(rec entity.SnapshotRecord, packed []byte) SnapshotDoc {
	return SnapshotDoc{
		Digest:    rec.Digest,
		FetchedAt: rec.FetchedAt.UTC(),
		Size:      len(rec.Raw),
		Data:      packed,
	}
}
