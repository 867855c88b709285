package entity

import (
	"errors"
	"strings"
	"testing"
)

func sampleWorld() *GameWorld {
	return &GameWorld{
		Radius: 5,
		Kingdoms: map[KingdomID]Kingdom{
			1: {Name: "ALPHA", VictoryPoints: 10, PlayerIDs: []PlayerID{7, 3}},
			2: {Name: "BETA", PlayerIDs: []PlayerID{}},
			4: {Name: "ALPHA"},
		},
		Players: map[PlayerID]Player{
			3: {Name: "p3", VillageIDs: []VillageID{30, 31}},
			7: {Name: "p7", VillageIDs: []VillageID{70, 999}},
			8: {Name: "p3"},
		},
		Villages: map[VillageID]Village{
			30: {Name: "v30", Population: 100},
			31: {Name: "v31", Population: 50},
			70: {Name: "v70", Population: 7},
		},
		Cells: map[Coord]Cell{
			{X: 0, Y: 0}: InfluencedCell(CellEmpty, 1, true),
		},
	}
}

func TestPlayerVillages_跳过缺失村庄(t *testing.T) {
	w := sampleWorld()
	got := w.PlayerVillages(7)
	if len(got) != 1 || got[0].Name != "v70" {
		t.Fatalf("期望只返回存在的 v70, got=%v", got)
	}
	if got := w.PlayerVillages(404); got != nil {
		t.Fatalf("期望未知玩家返回空, got=%v", got)
	}
}

func TestKingdomVillages_王国内玩家顺序优先(t *testing.T) {
	got := sampleWorld().KingdomVillages(1)
	var names []string
	for _, v := range got {
		names = append(names, v.Name)
	}
	if strings.Join(names, ",") != "v70,v30,v31" {
		t.Fatalf("期望按 [7 3] 的玩家顺序, got=%v", names)
	}
}

func TestFindByName_同名取最小id_找不到返回false(t *testing.T) {
	w := sampleWorld()
	if kid, ok := FindByName(w.Kingdoms, "ALPHA"); !ok || kid != 1 {
		t.Fatalf("期望 ALPHA → 1, got=%d %v", kid, ok)
	}
	if pid, ok := FindByName(w.Players, "p3"); !ok || pid != 3 {
		t.Fatalf("期望 p3 → 3, got=%d %v", pid, ok)
	}
	if vid, ok := FindByName(w.Villages, "v31"); !ok || vid != 31 {
		t.Fatalf("期望 v31 → 31, got=%d %v", vid, ok)
	}
	if _, ok := FindByName(w.Kingdoms, "GAMMA"); ok {
		t.Fatalf("期望不存在的名字返回 false")
	}
}

func TestNameIndex_与线性查找一致(t *testing.T) {
	w := sampleWorld()
	idx := NewNameIndex(w.Kingdoms)
	if idx.Len() != 2 {
		t.Fatalf("期望去重后 2 个名字, got=%d", idx.Len())
	}
	for _, name := range []string{"ALPHA", "BETA", "GAMMA"} {
		a, okA := idx.Lookup(name)
		b, okB := FindByName(w.Kingdoms, name)
		if a != b || okA != okB {
			t.Fatalf("%s: 索引(%d,%v) 与线性查找(%d,%v) 不一致", name, a, okA, b, okB)
		}
	}
}

func TestKingdomSummaries_按id排序并汇总人口(t *testing.T) {
	got := sampleWorld().KingdomSummaries()
	if len(got) != 3 || got[0].ID != 1 || got[1].ID != 2 || got[2].ID != 4 {
		t.Fatalf("期望按 id 升序, got=%+v", got)
	}
	s := got[0]
	if s.Players != 2 || s.Villages != 3 || s.Population != 157 || s.VictoryPoints != 10 {
		t.Fatalf("ALPHA 汇总不符合预期: %+v", s)
	}
}

func TestParseTribeRole_已知与未知编码(t *testing.T) {
	if tr, err := ParseTribe("3"); err != nil || tr != TribeGaul {
		t.Fatalf("期望 \"3\" → gaul, got=%v err=%v", tr, err)
	}
	if r, err := ParseRole(0); err != nil || r != RoleGovernor {
		t.Fatalf("期望 0 → governor, got=%v err=%v", r, err)
	}
	_, err := ParseTribe("9")
	if !errors.Is(err, ErrUnknownCode) || !strings.Contains(err.Error(), "unknown tribe code 9") {
		t.Fatalf("期望未知部族错误带出编码, got=%v", err)
	}
	_, err = ParseRole(99)
	if !errors.Is(err, ErrUnknownCode) || !strings.Contains(err.Error(), "unknown role code 99") {
		t.Fatalf("期望未知职位错误带出编码, got=%v", err)
	}
}

func TestCell_非占用地块没有归属(t *testing.T) {
	c := InfluencedCell(CellOasis, 3, false)
	if c.Kingdom != 0 {
		t.Fatalf("期望无影响王国时 Kingdom 归零, got=%d", c.Kingdom)
	}
	if _, _, ok := c.Owner(); ok {
		t.Fatalf("期望 Oasis 没有归属")
	}
	if CellOccupied.String() != "occupied" {
		t.Fatalf("CellKind.String 不符合预期")
	}
}
