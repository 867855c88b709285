package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"KingdomsMap/internal/world/app/port"
	"KingdomsMap/internal/world/builder"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/infra/persistence/codec"
	"KingdomsMap/modules/kit/logx"
)

type WorldService struct {
	source  port.SnapshotSource
	archive port.SnapshotArchive
	stats   port.StatsRepository
	builder *builder.Builder
	log     logx.Logger
	now     func() time.Time

	// 各自最近一次写入成功的摘要；写入失败不推进，下次刷新同一快照时重试
	archivedDigest string
	statsDigest    string
}

// Option 配置可选依赖，archive 与 stats 缺省时对应功能关闭。
type Option func(*WorldService)

func WithArchive(a port.SnapshotArchive) Option {
	return func(s *WorldService) { s.archive = a }
}

func WithStats(r port.StatsRepository) Option {
	return func(s *WorldService) { s.stats = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *WorldService) { s.now = now }
}

func NewWorldService(source port.SnapshotSource, l logx.Logger, opts ...Option) *WorldService {
	if l == nil {
		l = logx.Nop()
	}
	s := &WorldService{
		source:  source,
		builder: builder.New(l),
		log:     l,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh 拉取并构建新世界。构建成功后再归档和记录统计，二者失败只记日志。
func (s *WorldService) Refresh(ctx context.Context) (*entity.GameWorld, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	w, err := s.builder.BuildRaw(raw)
	if err != nil {
		return nil, err
	}

	rec := entity.SnapshotRecord{
		FetchedAt: s.now(),
		Digest:    codec.Digest(raw),
		Raw:       raw,
	}
	if s.archive != nil && rec.Digest != s.archivedDigest {
		if err := s.archive.Save(ctx, rec); err != nil {
			logx.ReportSysError(ctx, s.log, logx.NewSysLog("world.archive", err))
		} else {
			s.archivedDigest = rec.Digest
		}
	}
	if s.stats != nil && rec.Digest != s.statsDigest {
		if err := s.stats.SaveStats(ctx, statsOf(w, rec.FetchedAt)); err != nil {
			logx.ReportSysError(ctx, s.log, logx.NewSysLog("world.stats", err))
		} else {
			s.statsDigest = rec.Digest
		}
	}

	s.log.WithContext(ctx).Info("world refreshed",
		zap.String("world", w.Name),
		zap.Int("kingdoms", len(w.Kingdoms)),
		zap.Int("players", len(w.Players)),
		zap.Int("villages", len(w.Villages)),
		zap.String("digest", rec.Digest),
	)
	return w, nil
}

// Restore 从最近一次归档重建世界。
func (s *WorldService) Restore(ctx context.Context) (*entity.GameWorld, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	rec, err := s.archive.Latest(ctx)
	if err != nil {
		return nil, err
	}
	w, err := s.builder.BuildRaw(rec.Raw)
	if err != nil {
		return nil, err
	}
	s.archivedDigest = rec.Digest
	s.statsDigest = rec.Digest
	s.log.WithContext(ctx).Info("world restored",
		zap.String("digest", rec.Digest),
		zap.Time("fetched_at", rec.FetchedAt),
	)
	return w, nil
}

// Load 先尝试拉取，失败时回退到归档。
func (s *WorldService) Load(ctx context.Context) (*entity.GameWorld, error) {
	w, err := s.Refresh(ctx)
	if err == nil {
		return w, nil
	}
	if s.archive == nil {
		return nil, err
	}
	s.log.WithContext(ctx).Warn("refresh failed, restoring from archive", zap.Error(err))
	w, rerr := s.Restore(ctx)
	if rerr != nil {
		return nil, errors.Join(err, rerr)
	}
	return w, nil
}

func (s *WorldService) History(ctx context.Context, kid entity.KingdomID, limit int) ([]entity.KingdomStat, error) {
	if s.stats == nil {
		return nil, ErrStatsDisabled
	}
	return s.stats.History(ctx, kid, limit)
}

func statsOf(w *entity.GameWorld, at time.Time) []entity.KingdomStat {
	sums := w.KingdomSummaries()
	out := make([]entity.KingdomStat, 0, len(sums))
	for _, sum := range sums {
		out = append(out, entity.KingdomStat{At: at, KingdomSummary: sum})
	}
	return out
}
