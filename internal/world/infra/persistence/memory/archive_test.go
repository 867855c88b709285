package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"KingdomsMap/internal/world/app"
	"KingdomsMap/internal/world/entity"
)

func TestSnapshotArchive_相同内容只保存一次(t *testing.T) {
	ctx := context.Background()
	r := NewSnapshotArchive()

	if _, err := r.Latest(ctx); !errors.Is(err, app.ErrNoSnapshot) {
		t.Fatalf("期望空归档返回 ErrNoSnapshot, got=%v", err)
	}

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_ = r.Save(ctx, entity.SnapshotRecord{FetchedAt: t0, Raw: []byte("a")})
	_ = r.Save(ctx, entity.SnapshotRecord{FetchedAt: t0.Add(time.Minute), Raw: []byte("a")})
	_ = r.Save(ctx, entity.SnapshotRecord{FetchedAt: t0.Add(2 * time.Minute), Raw: []byte("b")})

	if r.Len() != 2 {
		t.Fatalf("期望去重后 2 条, got=%d", r.Len())
	}
	latest, err := r.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest err=%v", err)
	}
	if string(latest.Raw) != "b" || latest.Digest == "" {
		t.Fatalf("期望最新为 b 且带摘要, got=%+v", latest)
	}
}

func TestStatsRepo_History_保留最近记录(t *testing.T) {
	ctx := context.Background()
	r := NewStatsRepo()
	for i := range 5 {
		_ = r.SaveStats(ctx, []entity.KingdomStat{{
			At:             time.Unix(int64(i), 0),
			KingdomSummary: entity.KingdomSummary{ID: 1, VictoryPoints: i},
		}})
	}
	got, _ := r.History(ctx, 1, 2)
	if len(got) != 2 || got[0].VictoryPoints != 3 || got[1].VictoryPoints != 4 {
		t.Fatalf("期望最近两条 [3,4], got=%+v", got)
	}
	if none, _ := r.History(ctx, 2, 0); len(none) != 0 {
		t.Fatalf("期望未知王国无历史, got=%+v", none)
	}
}
