package builder

import (
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/snapshot"
)

const (
	resTypeNone = "0"
	oasisNone   = "0"
)

// classify 决定单个地块的分类，判断顺序不能调整：
//  1. 无资源（resType == "0"）一律 Other，不管是不是绿洲
//  2. 绿洲 → Oasis
//  3. 坐标上没有村庄 → Empty
//  4. 有村庄 → Occupied，携带 (王国?, 玩家, 村庄)
//
// 前三条排除后 occ 必然非空，四种情况已穷尽，不需要额外的兜底分支。
func classify(resType, oasis string, influence entity.KingdomID, hasInfluence bool, occ *occupant) entity.Cell {
	switch {
	case resType == resTypeNone:
		return entity.InfluencedCell(entity.CellOther, influence, hasInfluence)
	case oasis != oasisNone:
		return entity.InfluencedCell(entity.CellOasis, influence, hasInfluence)
	case occ == nil:
		return entity.InfluencedCell(entity.CellEmpty, influence, hasInfluence)
	default:
		return entity.OccupiedCell(occ.kingdom, occ.hasKingdom, occ.player, occ.village)
	}
}

func classifyCells(
	raw []snapshot.Cell,
	kingdoms map[entity.KingdomID]entity.Kingdom,
	occupants map[entity.Coord]occupant,
) map[entity.Coord]entity.Cell {
	cells := make(map[entity.Coord]entity.Cell, len(raw))
	for _, rc := range raw {
		coord := entity.Coord{X: rc.X.Int(), Y: rc.Y.Int()}

		influence := entity.KingdomID(rc.KingdomID)
		_, hasInfluence := kingdoms[influence]

		var occ *occupant
		if o, ok := occupants[coord]; ok {
			occ = &o
		}
		cells[coord] = classify(rc.ResType.String(), rc.Oasis.String(), influence, hasInfluence, occ)
	}
	return cells
}
