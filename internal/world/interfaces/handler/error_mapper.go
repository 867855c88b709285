package handler

import (
	"context"
	"errors"

	"KingdomsMap/internal/render/svg"
	"KingdomsMap/internal/shared/transport"
	"KingdomsMap/internal/world/actors"
	"KingdomsMap/internal/world/app"
	"KingdomsMap/internal/world/infra/fetch"
	"KingdomsMap/modules/kit/errx"
	"KingdomsMap/modules/kit/logx"
)

func mapErrToClientCode(err error) int {
	switch {
	case err == nil:
		return transport.OK
	case errors.Is(err, errx.ErrReqParamERR):
		return transport.InvalidParam
	case errors.Is(err, errx.ErrNotFound),
		errors.Is(err, svg.ErrGroupNotFound),
		errors.Is(err, app.ErrNoSnapshot):
		return transport.NotFound
	case errors.Is(err, actors.ErrWorldNotReady):
		return transport.WorldNotReady
	case errors.Is(err, app.ErrStatsDisabled),
		errors.Is(err, app.ErrArchiveDisabled),
		errors.Is(err, fetch.ErrFetchFailed),
		errors.Is(err, errx.ErrUnavailable),
		errors.Is(err, errx.ErrTimeout):
		return transport.Unavailable
	default:
		return transport.SystemError
	}
}

// HandleError 把错误转换为客户端码和提示，并在接口层打印一次日志。
func HandleError(ctx context.Context, l logx.Logger, action string, err error) (int, string) {
	code := mapErrToClientCode(err)
	if code == transport.OK {
		return code, ""
	}

	var xe *errx.Error
	if errors.As(err, &xe) && xe.IsBiz() {
		transport.SetErrorReason(ctx, string(xe.Code()))
		logx.ReportBiz(ctx, l, logx.NewBizLog(action, string(xe.Code()), xe.Msg()))
		return code, xe.Msg()
	}

	transport.SetErrorReason(ctx, string(errx.CodeOf(err)))
	logx.ReportSysError(ctx, l, logx.NewSysLog(action, err))
	if code == transport.Unavailable {
		return code, "服务暂不可用"
	}
	return code, "系统错误"
}
