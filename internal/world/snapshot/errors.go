package snapshot

import "KingdomsMap/modules/kit/errx"

const (
	// CodeDecode 表示快照文本格式错误：非法 JSON、缺字段、字段类型不符、数值无法转换为整数。
	CodeDecode errx.Code = "SNAPSHOT_DECODE_ERROR"
)

var ErrDecode = errx.NewBiz(CodeDecode, "地图数据格式错误")

func decodeError(field, detail string, cause error) *errx.Error {
	err := ErrDecode
	if field != "" {
		err = err.WithData("field", field)
	}
	if detail != "" {
		err = err.WithData("detail", detail)
	}
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}
