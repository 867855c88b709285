package transport

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"KingdomsMap/modules/kit/logx"
	"KingdomsMap/modules/kit/tracex"
)

func TestWriteAccessLog_记录业务码与失败原因(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logx.NewZapLogger(zap.New(core))

	ctx := NewContext("GET /kingdoms/:name/villages", "http")
	if _, ok := tracex.TraceIDFrom(ctx); !ok {
		t.Fatalf("期望 context 带 trace_id")
	}
	SetBizCode(ctx, NotFound)
	SetErrorReason(ctx, "kingdom_not_found")
	WriteAccessLog(ctx, l)

	if logs.Len() != 1 {
		t.Fatalf("期望 1 条访问日志, got=%d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["result"] != "failure" || fields["error_reason"] != "kingdom_not_found" {
		t.Fatalf("访问日志字段不符, got=%v", fields)
	}
}

func TestSetBizCode_无AccessLog时忽略(t *testing.T) {
	ctx := tracex.Start(nil, "http")
	SetBizCode(ctx, OK)
	if FromContext(ctx) != nil {
		t.Fatalf("期望普通 context 没有 AccessLog")
	}
}
