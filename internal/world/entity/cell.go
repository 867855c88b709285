package entity

import "fmt"

// CellKind 地块分类，四种互斥。
type CellKind uint8

const (
	CellOther CellKind = iota
	CellOasis
	CellEmpty
	CellOccupied
)

func (k CellKind) String() string {
	switch k {
	case CellOther:
		return "other"
	case CellOasis:
		return "oasis"
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	}
	return fmt.Sprintf("cell_kind(%d)", uint8(k))
}

// Cell 是一个坐标上的分类结果。
//
// Other/Oasis/Empty 只携带影响该地块的王国（可能没有）；
// Occupied 携带完整的归属（王国可能没有，玩家与村庄一定有）。
type Cell struct {
	Kind       CellKind
	Kingdom    KingdomID
	HasKingdom bool
	Player     PlayerID
	Village    VillageID
}

// KingdomOf 返回地块的影响/所属王国。
func (c Cell) KingdomOf() (KingdomID, bool) {
	return c.Kingdom, c.HasKingdom
}

// Owner 仅对 Occupied 地块返回 true。
func (c Cell) Owner() (PlayerID, VillageID, bool) {
	if c.Kind != CellOccupied {
		return 0, 0, false
	}
	return c.Player, c.Village, true
}

func InfluencedCell(kind CellKind, kingdom KingdomID, hasKingdom bool) Cell {
	if !hasKingdom {
		kingdom = 0
	}
	return Cell{Kind: kind, Kingdom: kingdom, HasKingdom: hasKingdom}
}

func OccupiedCell(kingdom KingdomID, hasKingdom bool, player PlayerID, village VillageID) Cell {
	c := InfluencedCell(CellOccupied, kingdom, hasKingdom)
	c.Player = player
	c.Village = village
	return c
}
