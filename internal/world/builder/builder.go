package builder

import (
	"slices"

	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/snapshot"
	"KingdomsMap/modules/kit/logx"

	"go.uber.org/zap"
)

// occupant 是某坐标上村庄的完整归属。
type occupant struct {
	kingdom    entity.KingdomID
	hasKingdom bool
	player     entity.PlayerID
	village    entity.VillageID
}

// Builder 把解码后的快照转换为 GameWorld。无状态，可复用。
type Builder struct {
	log logx.Logger
}

func New(l logx.Logger) *Builder {
	if l == nil {
		l = logx.Nop()
	}
	return &Builder{log: l}
}

// BuildRaw 解码并构建，失败时不返回任何 GameWorld。
func (b *Builder) BuildRaw(raw []byte) (*entity.GameWorld, error) {
	data, err := snapshot.Decode(raw)
	if err != nil {
		return nil, err
	}
	return b.Build(data)
}

// Build 依次建立王国、玩家、村庄表，再建坐标索引并分类地块。
func (b *Builder) Build(data *snapshot.MapData) (*entity.GameWorld, error) {
	kingdoms, err := indexKingdoms(data.Kingdoms)
	if err != nil {
		return nil, err
	}
	b.log.Debug("filled kingdoms", zap.Int("count", len(kingdoms)))

	players := make(map[entity.PlayerID]entity.Player, len(data.Players))
	villages := make(map[entity.VillageID]entity.Village)
	// 玩家→王国 反向索引，挂接时顺手维护，避免逐玩家扫描全部王国
	kingdomOf := make(map[entity.PlayerID]entity.KingdomID, len(data.Players))
	villageOwner := make(map[entity.VillageID]entity.PlayerID)
	order := make([]entity.PlayerID, 0, len(data.Players))

	for _, rp := range data.Players {
		pid, err := playerID(rp.PlayerID)
		if err != nil {
			return nil, err
		}
		tribe, err := entity.ParseTribe(rp.TribeID.String())
		if err != nil {
			return nil, err
		}
		role, err := entity.ParseRole(rp.Role.Int())
		if err != nil {
			return nil, err
		}

		// 重复的玩家 id：后出现的记录整体替换前一条，包括其村庄与王国归属
		if prev, dup := players[pid]; dup {
			b.log.Warn("duplicate player id, later record wins", zap.Int("player_id", int(pid)))
			for _, vid := range prev.VillageIDs {
				if villageOwner[vid] == pid {
					delete(villages, vid)
					delete(villageOwner, vid)
				}
			}
			detachPlayer(kingdoms, kingdomOf, pid)
		} else {
			order = append(order, pid)
		}

		villageIDs := make([]entity.VillageID, 0, len(rp.Villages))
		for _, rv := range rp.Villages {
			vid, err := villageID(rv.VillageID)
			if err != nil {
				return nil, err
			}
			villages[vid] = entity.Village{
				Name:       rv.Name,
				Population: rv.Population.Int(),
				IsCapital:  rv.IsMainVillage,
				IsCity:     rv.IsCity,
				Coord:      entity.Coord{X: rv.X.Int(), Y: rv.Y.Int()},
			}
			villageOwner[vid] = pid
			villageIDs = append(villageIDs, vid)
		}

		players[pid] = entity.Player{
			Name:       rp.Name,
			Tribe:      tribe,
			Role:       role,
			Treasures:  rp.Treasures.Int(),
			VillageIDs: villageIDs,
		}

		// 王国不存在时只丢弃归属关系，玩家本身保留
		kid := entity.KingdomID(rp.KingdomID)
		if k, ok := kingdoms[kid]; ok {
			k.PlayerIDs = append(k.PlayerIDs, pid)
			kingdoms[kid] = k
			kingdomOf[pid] = kid
		}
	}
	b.log.Debug("filled players", zap.Int("count", len(players)))

	occupants := b.indexOccupants(order, players, villages, kingdomOf)
	b.log.Debug("filled villages", zap.Int("count", len(villages)))

	cells := classifyCells(data.Map.Cells, kingdoms, occupants)
	b.log.Debug("filled cells", zap.Int("count", len(cells)))

	return &entity.GameWorld{
		Name:     data.GameWorld.Name,
		Radius:   data.Map.Radius.Int(),
		Kingdoms: kingdoms,
		Players:  players,
		Villages: villages,
		Cells:    cells,
	}, nil
}

func indexKingdoms(raw []snapshot.Kingdom) (map[entity.KingdomID]entity.Kingdom, error) {
	kingdoms := make(map[entity.KingdomID]entity.Kingdom, len(raw))
	for _, rk := range raw {
		if rk.KingdomID < 0 {
			return nil, negativeID("kingdomId", rk.KingdomID.Int())
		}
		kingdoms[entity.KingdomID(rk.KingdomID)] = entity.Kingdom{
			Name:          rk.KingdomTag,
			VictoryPoints: rk.VictoryPoints.Int(),
			PlayerIDs:     []entity.PlayerID{},
		}
	}
	return kingdoms, nil
}

// indexOccupants 建立 坐标→归属 索引。
//
// 按快照中玩家、村庄的出现顺序写入；两个村庄坐标相同时后写覆盖先写，冲突会记一条 warn。
// 村庄表按 id 覆盖，因此只采用仍指向同一 village id 的最新记录。
func (b *Builder) indexOccupants(
	order []entity.PlayerID,
	players map[entity.PlayerID]entity.Player,
	villages map[entity.VillageID]entity.Village,
	kingdomOf map[entity.PlayerID]entity.KingdomID,
) map[entity.Coord]occupant {
	occupants := make(map[entity.Coord]occupant, len(villages))
	seen := make(map[entity.PlayerID]bool, len(order))
	for _, pid := range order {
		if seen[pid] {
			continue
		}
		seen[pid] = true
		kid, hasKingdom := kingdomOf[pid]
		for _, vid := range players[pid].VillageIDs {
			v, ok := villages[vid]
			if !ok {
				continue
			}
			if prev, dup := occupants[v.Coord]; dup && prev.village != vid {
				b.log.Warn("village coordinate collision, last write wins",
					zap.Int("x", v.Coord.X),
					zap.Int("y", v.Coord.Y),
					zap.Int("previous_village_id", int(prev.village)),
					zap.Int("village_id", int(vid)),
				)
			}
			occupants[v.Coord] = occupant{
				kingdom:    kid,
				hasKingdom: hasKingdom,
				player:     pid,
				village:    vid,
			}
		}
	}
	return occupants
}

// detachPlayer 把玩家从当前所属王国的成员列表和反向索引中移除。
func detachPlayer(
	kingdoms map[entity.KingdomID]entity.Kingdom,
	kingdomOf map[entity.PlayerID]entity.KingdomID,
	pid entity.PlayerID,
) {
	kid, ok := kingdomOf[pid]
	if !ok {
		return
	}
	k := kingdoms[kid]
	k.PlayerIDs = slices.DeleteFunc(k.PlayerIDs, func(id entity.PlayerID) bool { return id == pid })
	kingdoms[kid] = k
	delete(kingdomOf, pid)
}

func playerID(n snapshot.FlexInt) (entity.PlayerID, error) {
	if n < 0 {
		return 0, negativeID("playerId", n.Int())
	}
	return entity.PlayerID(n), nil
}

func villageID(n snapshot.FlexInt) (entity.VillageID, error) {
	if n < 0 {
		return 0, negativeID("villageId", n.Int())
	}
	return entity.VillageID(n), nil
}

func negativeID(field string, v int) error {
	return snapshot.ErrDecode.
		WithMsgf("negative %s %d", field, v).
		WithData("field", field).
		WithData("value", v)
}
