package actors

import (
	"context"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"

	"KingdomsMap/internal/shared/actor/messages"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/modules/kit/errx"
	"KingdomsMap/modules/kit/logx"
	"KingdomsMap/modules/kit/tracex"
)

const CodeWorldNotReady errx.Code = "WORLD_NOT_READY"

var ErrWorldNotReady = errx.NewBiz(CodeWorldNotReady, "世界尚未加载")

type State int

const (
	None State = iota
	Init
	Online
	Stopping
	Offline
)

// WorldService 是 WorldActor 需要的加载能力，由 app.WorldService 实现。
type WorldService interface {
	Refresh(ctx context.Context) (*entity.GameWorld, error)
	Load(ctx context.Context) (*entity.GameWorld, error)
}

// Notifier 在每次成功刷新后收到通知，调用发生在 actor 线程内，实现不能阻塞。
type Notifier interface {
	WorldRefreshed(ev messages.WorldRefreshed)
}

type Options struct {
	Interval       time.Duration // 定时刷新间隔，0 表示关闭
	LoadOnStart    bool
	RefreshTimeout time.Duration // 单次刷新超时
}

// WorldActor 持有当前世界。刷新在独立 goroutine 中执行，完成后以 refreshDone 回到 actor，
// 因此刷新期间 GetWorld 仍然返回旧世界；刷新失败保留旧世界。
type WorldActor struct {
	state    State
	svc      WorldService
	notifier Notifier
	opts     Options
	log      logx.Logger

	world   *entity.GameWorld
	version int

	refreshing    bool
	refreshReason string
	waiters       []*actor.PID

	dispatcher *Dispatcher
	tickStop   chan struct{}
	cancel     context.CancelFunc
	baseCtx    context.Context
}

type refreshTick struct{}

func (refreshTick) NotInfluenceReceiveTimeout() {}

type refreshDone struct {
	world *entity.GameWorld
	err   error
}

func NewWorldActor(svc WorldService, notifier Notifier, opts Options, l logx.Logger) *WorldActor {
	if l == nil {
		l = logx.Nop()
	}
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = time.Minute
	}
	return &WorldActor{
		state:      None,
		svc:        svc,
		notifier:   notifier,
		opts:       opts,
		log:        l,
		dispatcher: NewDispatcher(),
	}
}

func (p *WorldActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		p.state = Init
		p.init(ctx)
		return
	case *actor.Stopping:
		p.stopTickLoop()
		if p.cancel != nil {
			p.cancel()
		}
		p.state = Stopping
		return
	case *actor.Stopped:
		p.stopTickLoop()
		p.state = Offline
		return
	case *actor.Restarting:
		p.stopTickLoop()
		p.state = Init
		return
	case refreshTick:
		if p.state != Online {
			return
		}
		p.startRefresh(ctx, "tick")
		return
	case *refreshDone:
		p.finishRefresh(ctx, msg)
		return
	case messages.WorldMessage:
		if p.state != Online {
			ctx.Respond(fail("world not online"))
			return
		}
		p.dispatcher.Dispatch(ctx, p, msg)
	default:
		return
	}
}

func (p *WorldActor) init(ctx actor.Context) {
	p.baseCtx, p.cancel = context.WithCancel(context.Background())
	p.state = Online
	if p.opts.LoadOnStart {
		p.refreshReason = "start"
		p.runRefresh(ctx, p.svc.Load)
	}
	p.startTickLoop(ctx)
}

// startRefresh 已有刷新在进行时只合并请求。
func (p *WorldActor) startRefresh(ctx actor.Context, reason string) {
	if p.refreshing {
		return
	}
	p.refreshReason = reason
	p.runRefresh(ctx, p.svc.Refresh)
}

func (p *WorldActor) runRefresh(ctx actor.Context, load func(context.Context) (*entity.GameWorld, error)) {
	p.refreshing = true
	self := ctx.Self()
	root := ctx.ActorSystem().Root
	parent := tracex.Start(p.baseCtx, "world.refresh")
	timeout := p.opts.RefreshTimeout

	go func() {
		rctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		w, err := load(rctx)
		root.Send(self, &refreshDone{world: w, err: err})
	}()
}

func (p *WorldActor) finishRefresh(ctx actor.Context, done *refreshDone) {
	p.refreshing = false
	reason := p.refreshReason

	if done.err != nil {
		logx.ReportSysError(p.baseCtx, p.log, logx.NewSysLog("world.refresh", done.err),
			zap.String("reason", reason))
	} else if done.world != nil {
		p.world = done.world
		p.version++
		if p.notifier != nil {
			p.notifier.WorldRefreshed(messages.WorldRefreshed{
				Version:  p.version,
				Name:     p.world.Name,
				Kingdoms: len(p.world.Kingdoms),
				Players:  len(p.world.Players),
				Villages: len(p.world.Villages),
				At:       time.Now(),
				Reason:   reason,
			})
		}
	}

	reply := &messages.WorldReply{World: p.world, Version: p.version, Err: done.err}
	for _, w := range p.waiters {
		ctx.Send(w, reply)
	}
	p.waiters = p.waiters[:0]
}

func (p *WorldActor) World() *entity.GameWorld {
	return p.world
}

func (p *WorldActor) startTickLoop(ctx actor.Context) {
	if p.tickStop != nil || p.opts.Interval <= 0 {
		return
	}
	p.tickStop = make(chan struct{})
	self := ctx.Self()
	root := ctx.ActorSystem().Root

	go func(stop <-chan struct{}, every time.Duration) {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				root.Send(self, refreshTick{})
			case <-stop:
				return
			}
		}
	}(p.tickStop, p.opts.Interval)
}

func (p *WorldActor) stopTickLoop() {
	if p.tickStop == nil {
		return
	}
	close(p.tickStop)
	p.tickStop = nil
}
