package entity

// Kingdom 王国。PlayerIDs 保持快照中玩家出现的顺序。
type Kingdom struct {
	Name          string
	VictoryPoints int
	PlayerIDs     []PlayerID
}

func (k Kingdom) DisplayName() string { return k.Name }

// Player 玩家。VillageIDs 保持快照中村庄出现的顺序。
type Player struct {
	Name       string
	Tribe      Tribe
	Role       Role
	Treasures  int
	VillageIDs []VillageID
}

func (p Player) DisplayName() string { return p.Name }

// Village 村庄。CropFields 快照里没有，构建时为 nil。
type Village struct {
	Name       string
	Population int
	IsCapital  bool
	IsCity     bool
	Coord      Coord
	CropFields *int
}

func (v Village) DisplayName() string { return v.Name }
