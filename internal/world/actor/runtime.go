package actor

import (
	"context"
	"time"

	protoactor "github.com/asynkron/protoactor-go/actor"

	"KingdomsMap/internal/shared/actor/messages"
	"KingdomsMap/internal/world/actors"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/modules/kit/errx"
	"KingdomsMap/modules/kit/logx"
)

const defaultAskTimeout = 3 * time.Second

const CodeActorRequestFailed errx.Code = "ACTOR_REQUEST_FAILED"

var ErrActorRequestFailed = errx.NewSys(CodeActorRequestFailed, "actor 请求失败")

// Runtime 封装 actor 系统，对外只暴露同步的 World/Refresh。
type Runtime struct {
	system  *protoactor.ActorSystem
	root    *protoactor.RootContext
	world   *protoactor.PID
	timeout time.Duration
	// Refresh 要等一次完整拉取，单独的超时
	refreshTimeout time.Duration
}

func NewRuntime(svc actors.WorldService, notifier actors.Notifier, opts actors.Options, l logx.Logger) *Runtime {
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = time.Minute
	}

	system := protoactor.NewActorSystem()
	root := system.Root
	props := protoactor.PropsFromProducer(func() protoactor.Actor {
		return actors.NewWorldActor(svc, notifier, opts, l)
	})
	pid := root.Spawn(props)

	return &Runtime{
		system:         system,
		root:           root,
		world:          pid,
		timeout:        defaultAskTimeout,
		refreshTimeout: opts.RefreshTimeout + time.Second,
	}
}

func (r *Runtime) Shutdown() {
	if r == nil {
		return
	}
	if r.root != nil && r.world != nil {
		_ = r.root.StopFuture(r.world).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

// World 返回当前世界及其版本号。
func (r *Runtime) World(ctx context.Context) (*entity.GameWorld, int, error) {
	return r.ask(&messages.GetWorld{}, timeoutFromContext(ctx, r.timeout))
}

// Refresh 立即刷新并等待结果。刷新失败时返回错误，当前世界不变。
func (r *Runtime) Refresh(ctx context.Context, reason string) (*entity.GameWorld, int, error) {
	return r.ask(&messages.RefreshWorld{Reason: reason}, timeoutFromContext(ctx, r.refreshTimeout))
}

func (r *Runtime) ask(msg messages.WorldMessage, timeout time.Duration) (*entity.GameWorld, int, error) {
	res, err := r.request(r.world, msg, timeout)
	if err != nil {
		return nil, 0, err
	}
	switch reply := res.(type) {
	case *messages.WorldReply:
		if reply.Err != nil {
			return nil, reply.Version, reply.Err
		}
		return reply.World, reply.Version, nil
	case *messages.FailResp:
		return nil, 0, ErrActorRequestFailed.WithMsg(reply.Message)
	default:
		return nil, 0, ErrActorRequestFailed.WithMsgf("unexpected reply %T", res)
	}
}

func (r *Runtime) request(pid *protoactor.PID, msg any, timeout time.Duration) (any, error) {
	if r == nil || r.root == nil {
		return nil, ErrActorRequestFailed.WithMsg("actor runtime 未初始化")
	}
	if pid == nil {
		return nil, ErrActorRequestFailed.WithMsg("actor pid 为空")
	}

	future := r.root.RequestFuture(pid, msg, timeout)
	res, err := future.Result()
	if err != nil {
		return nil, ErrActorRequestFailed.WithCause(err)
	}
	return res, nil
}

func timeoutFromContext(ctx context.Context, base time.Duration) time.Duration {
	if base <= 0 {
		base = defaultAskTimeout
	}
	if ctx == nil {
		return base
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return base
	}
	remain := time.Until(deadline)
	if remain <= 0 {
		return time.Millisecond
	}
	return min(remain, base)
}
