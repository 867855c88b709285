package mysql

import (
	"context"

	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/infra/persistence/model"
	"KingdomsMap/modules/kit/errx"

	"gorm.io/gorm"
)

const defaultHistoryLimit = 100

type StatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&model.KingdomStat{})
}

func (r *StatsRepo) SaveStats(ctx context.Context, stats []entity.KingdomStat) error {
	if len(stats) == 0 {
		return nil
	}
	rows := make([]model.KingdomStat, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, model.KingdomStatToModel(s))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, 200).Error
	})
	if err != nil {
		return errx.ErrUnavailable.WithMsg("save kingdom stats failed").
			WithData("rows", len(rows)).
			WithCause(err)
	}
	return nil
}

// History 返回某王国最近 limit 条记录，按时间升序。
func (r *StatsRepo) History(ctx context.Context, kid entity.KingdomID, limit int) ([]entity.KingdomStat, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	var rows []model.KingdomStat
	err := r.db.WithContext(ctx).
		Where("kingdom_id = ?", int(kid)).
		Order("at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errx.ErrUnavailable.WithMsg("load kingdom history failed").
			WithData("kingdom_id", int(kid)).
			WithCause(err)
	}

	out := make([]entity.KingdomStat, len(rows))
	for i, m := range rows {
		out[len(rows)-1-i] = model.KingdomStatToEntity(m)
	}
	return out, nil
}
