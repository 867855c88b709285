package entity

import "time"

// SnapshotRecord 是归档的一份原始快照。Digest 为原文的 blake3 摘要，用于去重。
type SnapshotRecord struct {
	FetchedAt time.Time
	Digest    string
	Raw       []byte
}

// KingdomStat 是某次快照时刻的王国汇总，按时间累积成历史。
type KingdomStat struct {
	At time.Time
	KingdomSummary
}
