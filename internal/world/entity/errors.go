package entity

import "KingdomsMap/modules/kit/errx"

const (
	// CodeUnknownCode 表示部族/职位编码不在已知集合内，msg 中带有原始编码。
	CodeUnknownCode errx.Code = "WORLD_UNKNOWN_CODE"
)

var ErrUnknownCode = errx.NewBiz(CodeUnknownCode, "未知编码")
