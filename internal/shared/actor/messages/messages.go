package messages

// FailResp 是 actor 无法处理请求时的统一回复。
type FailResp struct {
	Code    int
	Message string
}
