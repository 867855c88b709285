package messages

import (
	"time"

	"KingdomsMap/internal/world/entity"
)

// WorldMessage 是 WorldActor 接受的请求。
type WorldMessage interface {
	worldMessage()
}

type worldBase struct{}

func (worldBase) worldMessage() {}

// RefreshWorld 要求立即拉取一次快照。Reason 仅用于日志。
type RefreshWorld struct {
	worldBase
	Reason string
}

// GetWorld 读取当前世界。
type GetWorld struct {
	worldBase
}

// WorldReply 是两种请求的回复。World 构建后只读，可跨 goroutine 共享。
type WorldReply struct {
	World   *entity.GameWorld
	Version int
	Err     error
}

// WorldRefreshed 在每次成功刷新后推送给订阅方。
type WorldRefreshed struct {
	Version  int       `json:"version"`
	Name     string    `json:"name"`
	Kingdoms int       `json:"kingdoms"`
	Players  int       `json:"players"`
	Villages int       `json:"villages"`
	At       time.Time `json:"at"`
	Reason   string    `json:"reason"`
}
