package actors

import (
	"KingdomsMap/internal/shared/actor/messages"
	"KingdomsMap/internal/shared/transport"

	"github.com/asynkron/protoactor-go/actor"
)

type WorldHandler struct{}

var WH = &WorldHandler{}

// HandleRefreshWorld 发起一次刷新，结果在刷新完成后回复。刷新中再次请求会排队等待同一结果。
func (h *WorldHandler) HandleRefreshWorld(ctx actor.Context, p *WorldActor, req *messages.RefreshWorld) {
	if req == nil {
		ctx.Respond(fail("request parameter error"))
		return
	}
	if sender := ctx.Sender(); sender != nil {
		p.waiters = append(p.waiters, sender)
	}
	p.startRefresh(ctx, req.Reason)
}

func (h *WorldHandler) HandleGetWorld(ctx actor.Context, p *WorldActor, req *messages.GetWorld) {
	if req == nil {
		ctx.Respond(fail("request parameter error"))
		return
	}
	if p.world == nil {
		ctx.Respond(&messages.WorldReply{Err: ErrWorldNotReady})
		return
	}
	ctx.Respond(&messages.WorldReply{World: p.world, Version: p.version})
}

func fail(reason string) *messages.FailResp {
	return &messages.FailResp{Code: transport.SystemError, Message: reason}
}
