package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"KingdomsMap/internal/world/app"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/infra/persistence/memory"
	"KingdomsMap/internal/world/snapshot"
	"KingdomsMap/internal/world/snapshot/snapshottest"
	"KingdomsMap/modules/kit/errx"
)

type fakeSource struct {
	raw   []byte
	err   error
	calls int
}

func (f *fakeSource) Fetch(context.Context) ([]byte, error) {
	f.calls++
	return f.raw, f.err
}

type failingArchive struct{}

func (failingArchive) Save(context.Context, entity.SnapshotRecord) error { return errx.ErrUnavailable }

func (failingArchive) Latest(context.Context) (entity.SnapshotRecord, error) {
	return entity.SnapshotRecord{}, errx.ErrUnavailable
}

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestRefresh_归档并记录统计(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{raw: []byte(snapshottest.SampleJSON)}
	archive := memory.NewSnapshotArchive()
	stats := memory.NewStatsRepo()
	svc := app.NewWorldService(src, nil, app.WithArchive(archive), app.WithStats(stats), app.WithClock(fixedClock()))

	w, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh err=%v", err)
	}
	if len(w.Kingdoms) != 2 {
		t.Fatalf("期望 2 个王国, got=%d", len(w.Kingdoms))
	}
	if archive.Len() != 1 {
		t.Fatalf("期望归档 1 条, got=%d", archive.Len())
	}
	hist, err := svc.History(ctx, 1, 0)
	if err != nil || len(hist) != 1 || hist[0].Name != "ALPHA" {
		t.Fatalf("期望 ALPHA 有 1 条历史, got=%+v err=%v", hist, err)
	}

	// 内容未变时不重复记录
	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("第二次 Refresh err=%v", err)
	}
	if archive.Len() != 1 {
		t.Fatalf("期望相同快照不重复归档, got=%d", archive.Len())
	}
	if hist, _ := svc.History(ctx, 1, 0); len(hist) != 1 {
		t.Fatalf("期望相同快照不重复记录统计, got=%d", len(hist))
	}
}

func TestRefresh_解码失败不归档(t *testing.T) {
	src := &fakeSource{raw: []byte(`{"response":{}}`)}
	archive := memory.NewSnapshotArchive()
	svc := app.NewWorldService(src, nil, app.WithArchive(archive))

	w, err := svc.Refresh(context.Background())
	if !errors.Is(err, snapshot.ErrDecode) || w != nil {
		t.Fatalf("期望 ErrDecode 且无世界, w=%v err=%v", w, err)
	}
	if archive.Len() != 0 {
		t.Fatalf("期望非法快照不归档, got=%d", archive.Len())
	}
}

func TestRestore_从归档重建(t *testing.T) {
	ctx := context.Background()
	archive := memory.NewSnapshotArchive()
	svc := app.NewWorldService(&fakeSource{err: errx.ErrUnavailable}, nil, app.WithArchive(archive))

	if _, err := svc.Restore(ctx); !errors.Is(err, app.ErrNoSnapshot) {
		t.Fatalf("期望空归档返回 ErrNoSnapshot, got=%v", err)
	}

	seed := app.NewWorldService(&fakeSource{raw: []byte(snapshottest.SampleJSON)}, nil, app.WithArchive(archive))
	if _, err := seed.Refresh(ctx); err != nil {
		t.Fatalf("seed Refresh err=%v", err)
	}

	w, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("期望拉取失败时回退归档, err=%v", err)
	}
	if len(w.PlayerVillages(11)) != 2 {
		t.Fatalf("期望 bob 有 2 个村庄, got=%v", w.PlayerVillages(11))
	}
}

func TestLoad_无归档时返回拉取错误(t *testing.T) {
	svc := app.NewWorldService(&fakeSource{err: errx.ErrTimeout}, nil)
	if _, err := svc.Load(context.Background()); !errors.Is(err, errx.ErrTimeout) {
		t.Fatalf("期望透传 ErrTimeout, got=%v", err)
	}
	if _, err := svc.Restore(context.Background()); !errors.Is(err, app.ErrArchiveDisabled) {
		t.Fatalf("期望 ErrArchiveDisabled, got=%v", err)
	}
	if _, err := svc.History(context.Background(), 1, 0); !errors.Is(err, app.ErrStatsDisabled) {
		t.Fatalf("期望 ErrStatsDisabled, got=%v", err)
	}
}

func TestRefresh_归档失败不影响刷新(t *testing.T) {
	src := &fakeSource{raw: []byte(snapshottest.SampleJSON)}
	svc := app.NewWorldService(src, nil, app.WithArchive(failingArchive{}))
	if _, err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("期望归档失败只记日志, err=%v", err)
	}
}

// flakyArchive 前 failures 次 Save 失败，之后写入内存归档。
type flakyArchive struct {
	*memory.SnapshotArchive
	failures int
}

func (f *flakyArchive) Save(ctx context.Context, rec entity.SnapshotRecord) error {
	if f.failures > 0 {
		f.failures--
		return errx.ErrUnavailable
	}
	return f.SnapshotArchive.Save(ctx, rec)
}

func TestRefresh_归档恢复后补写同一快照(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{raw: []byte(snapshottest.SampleJSON)}
	archive := &flakyArchive{SnapshotArchive: memory.NewSnapshotArchive(), failures: 1}
	stats := memory.NewStatsRepo()
	svc := app.NewWorldService(src, nil, app.WithArchive(archive), app.WithStats(stats), app.WithClock(fixedClock()))

	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("第一次 Refresh err=%v", err)
	}
	if archive.Len() != 0 {
		t.Fatalf("期望第一次归档失败, got=%d", archive.Len())
	}
	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("第二次 Refresh err=%v", err)
	}
	if archive.Len() != 1 {
		t.Fatalf("期望归档恢复后补写快照, got=%d", archive.Len())
	}
	// 统计第一次已写成功，补写归档时不重复记录
	if hist, _ := svc.History(ctx, 1, 0); len(hist) != 1 {
		t.Fatalf("期望统计只记录 1 条, got=%d", len(hist))
	}
	if _, err := svc.Restore(ctx); err != nil {
		t.Fatalf("期望补写后可从归档恢复, err=%v", err)
	}
}
