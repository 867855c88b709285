package entity

import (
	"cmp"
	"maps"
	"slices"
)

// GameWorld 是一次快照构建出的完整模型，构建完成后只读，可被多个读者并发共享。
type GameWorld struct {
	Name     string
	Radius   int
	Kingdoms map[KingdomID]Kingdom
	Players  map[PlayerID]Player
	Villages map[VillageID]Village
	Cells    map[Coord]Cell
}

// PlayerVillages 按玩家村庄顺序返回村庄；玩家不存在时返回空。
func (w *GameWorld) PlayerVillages(pid PlayerID) []Village {
	p, ok := w.Players[pid]
	if !ok {
		return nil
	}
	out := make([]Village, 0, len(p.VillageIDs))
	for _, vid := range p.VillageIDs {
		if v, ok := w.Villages[vid]; ok {
			out = append(out, v)
		}
	}
	return out
}

// KingdomVillages 先按王国内玩家顺序、再按玩家村庄顺序拼接。
func (w *GameWorld) KingdomVillages(kid KingdomID) []Village {
	k, ok := w.Kingdoms[kid]
	if !ok {
		return nil
	}
	var out []Village
	for _, pid := range k.PlayerIDs {
		out = append(out, w.PlayerVillages(pid)...)
	}
	return out
}

// CellAt 返回坐标上的分类结果；快照里没有该坐标时 ok=false。
func (w *GameWorld) CellAt(c Coord) (Cell, bool) {
	cell, ok := w.Cells[c]
	return cell, ok
}

// CellKindCounts 统计各类地块数量。
func (w *GameWorld) CellKindCounts() map[CellKind]int {
	out := make(map[CellKind]int, 4)
	for _, c := range w.Cells {
		out[c.Kind]++
	}
	return out
}

// KingdomSummary 是王国维度的汇总，用于排行和历史记录。
type KingdomSummary struct {
	ID            KingdomID
	Name          string
	VictoryPoints int
	Players       int
	Villages      int
	Population    int
}

// KingdomSummaries 按王国 id 升序返回汇总。
func (w *GameWorld) KingdomSummaries() []KingdomSummary {
	ids := slices.Sorted(maps.Keys(w.Kingdoms))
	out := make([]KingdomSummary, 0, len(ids))
	for _, kid := range ids {
		k := w.Kingdoms[kid]
		villages := w.KingdomVillages(kid)
		s := KingdomSummary{
			ID:            kid,
			Name:          k.Name,
			VictoryPoints: k.VictoryPoints,
			Players:       len(k.PlayerIDs),
			Villages:      len(villages),
		}
		for _, v := range villages {
			s.Population += v.Population
		}
		out = append(out, s)
	}
	return out
}

// sortedKeys 让按名字查找的"第一个"稳定为最小 id。
func sortedKeys[K cmp.Ordered, T any](m map[K]T) []K {
	return slices.Sorted(maps.Keys(m))
}
