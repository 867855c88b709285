package ws

import (
	"sync"

	"go.uber.org/zap"

	"KingdomsMap/internal/shared/actor/messages"
	"KingdomsMap/modules/kit/logx"
)

// Hub 维护在线连接并广播推送。连接关闭后自动移除。
type Hub struct {
	sync.RWMutex
	conns map[WSConn]struct{}
	log   logx.Logger
}

func NewHub(l logx.Logger) *Hub {
	if l == nil {
		l = logx.Nop()
	}
	return &Hub{
		conns: make(map[WSConn]struct{}),
		log:   l,
	}
}

func (h *Hub) Add(c WSConn) {
	h.Lock()
	h.conns[c] = struct{}{}
	h.Unlock()

	go func() {
		<-c.Done()
		h.Remove(c)
	}()
}

func (h *Hub) Remove(c WSConn) {
	h.Lock()
	delete(h.conns, c)
	h.Unlock()
}

func (h *Hub) Len() int {
	h.RLock()
	defer h.RUnlock()
	return len(h.conns)
}

// Broadcast 返回成功入队的连接数。
func (h *Hub) Broadcast(name string, data any) int {
	h.RLock()
	conns := make([]WSConn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.RUnlock()

	sent := 0
	for _, c := range conns {
		if c.Push(name, data) {
			sent++
		}
	}
	return sent
}

// WorldRefreshed 实现 actors.Notifier。
func (h *Hub) WorldRefreshed(ev messages.WorldRefreshed) {
	sent := h.Broadcast(RefreshedMsg, ev)
	h.log.Debug("world refresh pushed", zap.Int("version", ev.Version), zap.Int("conns", sent))
}
