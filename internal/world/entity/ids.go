package entity

// 各类实体的 id 只在本类内唯一：王国 1 和玩家 1 互不相干，查找总是按类型进行。
type KingdomID int
type PlayerID int
type VillageID int

// Coord 是地图格子坐标，可直接作为 map 的 key。
type Coord struct {
	X int
	Y int
}
