package errx

// 跨模块共用的系统类错误码。各领域自己的错误码（例如 SNAPSHOT_DECODE_ERROR）放在各自包里定义。
const (
	// CodeInternal 兜底的内部错误。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 依赖不可用（上游 API、MongoDB、MySQL）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 上游调用超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeReqParamError 请求参数错误。
	CodeReqParamError Code = "CODE_REQ_PARAM_ERROR"
	// CodeNotFound 查询对象不存在。
	CodeNotFound Code = "NOT_FOUND"
)

var (
	ErrInternal    = NewSys(CodeInternal, "服务器内部错误")
	ErrUnavailable = NewSys(CodeUnavailable, "服务不可用")
	ErrTimeout     = NewSys(CodeTimeout, "请求超时")
	ErrReqParamERR = NewBiz(CodeReqParamError, "请求参数错误")
	ErrNotFound    = NewBiz(CodeNotFound, "对象不存在")
)
