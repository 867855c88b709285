package dto

import (
	"time"

	"KingdomsMap/internal/world/entity"
)

type WorldView struct {
	Name     string         `json:"name"`
	Radius   int            `json:"radius"`
	Version  int            `json:"version"`
	Kingdoms int            `json:"kingdoms"`
	Players  int            `json:"players"`
	Villages int            `json:"villages"`
	Cells    map[string]int `json:"cells"`
}

func NewWorldView(w *entity.GameWorld, version int) WorldView {
	cells := make(map[string]int, 4)
	for kind, n := range w.CellKindCounts() {
		cells[kind.String()] = n
	}
	return WorldView{
		Name:     w.Name,
		Radius:   w.Radius,
		Version:  version,
		Kingdoms: len(w.Kingdoms),
		Players:  len(w.Players),
		Villages: len(w.Villages),
		Cells:    cells,
	}
}

type KingdomView struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	VictoryPoints int    `json:"victory_points"`
	Players       int    `json:"players"`
	Villages      int    `json:"villages"`
	Population    int    `json:"population"`
}

func NewKingdomView(s entity.KingdomSummary) KingdomView {
	return KingdomView{
		ID:            int(s.ID),
		Name:          s.Name,
		VictoryPoints: s.VictoryPoints,
		Players:       s.Players,
		Villages:      s.Villages,
		Population:    s.Population,
	}
}

type KingdomStatView struct {
	At time.Time `json:"at"`
	KingdomView
}

func NewKingdomStatView(s entity.KingdomStat) KingdomStatView {
	return KingdomStatView{At: s.At, KingdomView: NewKingdomView(s.KingdomSummary)}
}

type VillageView struct {
	Name       string `json:"name"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Population int    `json:"population"`
	Capital    bool   `json:"capital"`
	City       bool   `json:"city"`
}

func NewVillageViews(vs []entity.Village) []VillageView {
	out := make([]VillageView, 0, len(vs))
	for _, v := range vs {
		out = append(out, VillageView{
			Name:       v.Name,
			X:          v.Coord.X,
			Y:          v.Coord.Y,
			Population: v.Population,
			Capital:    v.IsCapital,
			City:       v.IsCity,
		})
	}
	return out
}

// CellView 中 kingdom/player/village 只在存在时输出。
type CellView struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Kind    string `json:"kind"`
	Kingdom string `json:"kingdom,omitempty"`
	Player  string `json:"player,omitempty"`
	Village string `json:"village,omitempty"`
}

func NewCellView(w *entity.GameWorld, at entity.Coord, c entity.Cell) CellView {
	v := CellView{X: at.X, Y: at.Y, Kind: c.Kind.String()}
	if kid, ok := c.KingdomOf(); ok {
		v.Kingdom = w.Kingdoms[kid].Name
	}
	if pid, vid, ok := c.Owner(); ok {
		v.Player = w.Players[pid].Name
		v.Village = w.Villages[vid].Name
	}
	return v
}
