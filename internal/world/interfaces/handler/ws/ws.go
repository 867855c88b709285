package ws

import (
	"context"

	"KingdomsMap/internal/shared/transport"
	"KingdomsMap/internal/shared/transport/ws"
	"KingdomsMap/internal/world/interfaces/handler"
	httphandler "KingdomsMap/internal/world/interfaces/handler/http"
	"KingdomsMap/internal/world/interfaces/handler/http/dto"
	"KingdomsMap/modules/kit/logx"
)

type WsHandler struct {
	worlds httphandler.WorldReader
	log    logx.Logger
}

func NewWsHandler(worlds httphandler.WorldReader, l logx.Logger) *WsHandler {
	if l == nil {
		l = logx.Nop()
	}
	return &WsHandler{worlds: worlds, log: l}
}

func (h *WsHandler) RegisterRoutes(r *ws.Router) {
	g := r.Group("world")
	g.Handle("status", h.Status)
}

// Status 返回当前世界概况，客户端连上后用它对齐版本号，之后只等推送。
func (h *WsHandler) Status(ctx context.Context, req *ws.WsMsgReq, resp *ws.WsMsgResp) {
	w, version, err := h.worlds.World(ctx)
	if err != nil {
		resp.Body.Code, resp.Body.Msg = handler.HandleError(ctx, h.log, "ws.world.status", err)
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = dto.NewWorldView(w, version)
}
