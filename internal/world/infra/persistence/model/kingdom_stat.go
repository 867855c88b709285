package model

import (
	"time"

	"KingdomsMap/internal/world/entity"
)

// KingdomStat 对应 kingdom_stat 表。
type KingdomStat struct {
	Id            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	KingdomId     int       `gorm:"column:kingdom_id;index:idx_kingdom_at,priority:1"`
	Name          string    `gorm:"column:name;size:64"`
	VictoryPoints int       `gorm:"column:victory_points"`
	Players       int       `gorm:"column:players"`
	Villages      int       `gorm:"column:villages"`
	Population    int       `gorm:"column:population"`
	At            time.Time `gorm:"column:at;index:idx_kingdom_at,priority:2"`
}

func (KingdomStat) TableName() string {
	return "kingdom_stat"
}

func KingdomStatToModel(s entity.KingdomStat) KingdomStat {
	return KingdomStat{
		KingdomId:     int(s.ID),
		Name:          s.Name,
		VictoryPoints: s.VictoryPoints,
		Players:       s.Players,
		Villages:      s.Villages,
		Population:    s.Population,
		At:            s.At.UTC(),
	}
}

func KingdomStatToEntity(m KingdomStat) entity.KingdomStat {
	return entity.KingdomStat{
		At: m.At,
		KingdomSummary: entity.KingdomSummary{
			ID:            entity.KingdomID(m.KingdomId),
			Name:          m.Name,
			VictoryPoints: m.VictoryPoints,
			Players:       m.Players,
			Villages:      m.Villages,
			Population:    m.Population,
		},
	}
}
