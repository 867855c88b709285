package snapshot

// Response 对应上游 getMapData 的完整返回：{"response": {...}}。
type Response struct {
	Response MapData `json:"response"`
}

// MapData 是解码后的中间结构，只保证形状和数值类型，不做业务校验。
type MapData struct {
	GameWorld GameWorld `json:"gameworld"`
	Players   []Player  `json:"players"`
	Kingdoms  []Kingdom `json:"kingdoms"`
	Map       Map       `json:"map"`
}

type GameWorld struct {
	Name           string  `json:"name"`
	StartTime      FlexInt `json:"startTime"`
	Speed          FlexInt `json:"speed"`
	SpeedTroops    FlexInt `json:"speedTroops"`
	LastUpdateTime FlexInt `json:"lastUpdateTime"`
	Date           FlexInt `json:"date"`
	Version        string  `json:"version"`
}

type Village struct {
	VillageID     FlexInt `json:"villageId"`
	X             FlexInt `json:"x"`
	Y             FlexInt `json:"y"`
	Population    FlexInt `json:"population"`
	Name          string  `json:"name"`
	IsMainVillage bool    `json:"isMainVillage"`
	IsCity        bool    `json:"isCity"`
}

type Player struct {
	PlayerID           FlexInt   `json:"playerId"`
	Name               string    `json:"name"`
	TribeID            FlexCode  `json:"tribeId"`
	KingdomID          FlexInt   `json:"kingdomId"`
	Treasures          FlexInt   `json:"treasures"`
	Role               FlexInt   `json:"role"`
	ExternalLoginToken string    `json:"externalLoginToken"`
	Villages           []Village `json:"villages"`
}

type Kingdom struct {
	KingdomID     FlexInt `json:"kingdomId"`
	KingdomTag    string  `json:"kingdomTag"`
	CreationTime  FlexInt `json:"creationTime"`
	VictoryPoints FlexInt `json:"victoryPoints"`
}

type Cell struct {
	ID        FlexInt  `json:"id"`
	X         FlexInt  `json:"x"`
	Y         FlexInt  `json:"y"`
	ResType   FlexCode `json:"resType"`
	Oasis     FlexCode `json:"oasis"`
	Landscape FlexInt  `json:"landscape"`
	KingdomID FlexInt  `json:"kingdomId"`
}

type Map struct {
	Radius     FlexInt        `json:"radius"`
	Cells      []Cell         `json:"cells"`
	Landscapes map[int]string `json:"landscapes"`
}
