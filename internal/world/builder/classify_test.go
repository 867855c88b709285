package builder

import (
	"testing"

	"KingdomsMap/internal/world/entity"
)

func TestClassify_无资源优先于绿洲(t *testing.T) {
	c := classify("0", "1", 5, true, nil)
	if c.Kind != entity.CellOther {
		t.Fatalf("期望 resType=0 oasis=1 分类为 Other, got=%v", c.Kind)
	}
	if kid, ok := c.KingdomOf(); !ok || kid != 5 {
		t.Fatalf("期望携带影响王国 5, got=%d %v", kid, ok)
	}

	occ := &occupant{kingdom: 1, hasKingdom: true, player: 2, village: 3}
	if c := classify("0", "0", 5, true, occ); c.Kind != entity.CellOther {
		t.Fatalf("期望无资源地块即使有村庄也是 Other, got=%v", c.Kind)
	}
}

func TestClassify_绿洲与空地(t *testing.T) {
	if c := classify("3", "2", 0, false, nil); c.Kind != entity.CellOasis || c.HasKingdom {
		t.Fatalf("期望 Oasis 且无影响王国, got=%+v", c)
	}
	if c := classify("4", "0", 7, true, nil); c.Kind != entity.CellEmpty || c.Kingdom != 7 {
		t.Fatalf("期望 Empty 且影响王国 7, got=%+v", c)
	}
}

func TestClassify_被占地块携带完整归属(t *testing.T) {
	occ := &occupant{player: 13, village: 104}
	c := classify("3", "0", 9, true, occ)
	if c.Kind != entity.CellOccupied {
		t.Fatalf("期望 Occupied, got=%v", c.Kind)
	}
	if _, ok := c.KingdomOf(); ok {
		t.Fatalf("期望玩家无王国时 Occupied 不携带王国（而不是地块影响王国）")
	}
	if pid, vid, ok := c.Owner(); !ok || pid != 13 || vid != 104 {
		t.Fatalf("归属不符合预期: %+v", c)
	}
}

func TestClassifyCells_样本快照(t *testing.T) {
	w := buildSample(t)
	cases := []struct {
		coord      entity.Coord
		kind       entity.CellKind
		kingdom    entity.KingdomID
		hasKingdom bool
	}{
		{entity.Coord{X: 1, Y: 2}, entity.CellOccupied, 1, true},
		{entity.Coord{X: -12, Y: -12}, entity.CellOccupied, 1, true},
		{entity.Coord{X: -1, Y: -1}, entity.CellOccupied, 0, false},
		{entity.Coord{X: 0, Y: 0}, entity.CellOther, 1, true},
		{entity.Coord{X: 2, Y: 2}, entity.CellOasis, 2, true},
		{entity.Coord{X: 7, Y: 7}, entity.CellEmpty, 0, false},
		{entity.Coord{X: 8, Y: 8}, entity.CellEmpty, 2, true},
	}
	for _, tc := range cases {
		c, ok := w.CellAt(tc.coord)
		if !ok {
			t.Fatalf("期望 %v 有地块", tc.coord)
		}
		kid, has := c.KingdomOf()
		if c.Kind != tc.kind || has != tc.hasKingdom || kid != tc.kingdom {
			t.Fatalf("%v 分类不符合预期: got=%+v", tc.coord, c)
		}
	}
	if pid, vid, _ := w.Cells[entity.Coord{X: -12, Y: -12}].Owner(); pid != 11 || vid != 101 {
		t.Fatalf("期望 (-12,-12) 归属 bob/101, got=%d/%d", pid, vid)
	}
	counts := w.CellKindCounts()
	if counts[entity.CellOccupied] != 3 || counts[entity.CellEmpty] != 2 || counts[entity.CellOasis] != 1 || counts[entity.CellOther] != 1 {
		t.Fatalf("分类计数不符合预期: %v", counts)
	}
}
