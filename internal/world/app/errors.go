package app

import "KingdomsMap/modules/kit/errx"

const (
	CodeNoSnapshot      errx.Code = "WORLD_NO_SNAPSHOT"
	CodeArchiveDisabled errx.Code = "WORLD_ARCHIVE_DISABLED"
	CodeStatsDisabled   errx.Code = "WORLD_STATS_DISABLED"
)

var (
	ErrNoSnapshot      = errx.NewBiz(CodeNoSnapshot, "没有可用的快照")
	ErrArchiveDisabled = errx.NewBiz(CodeArchiveDisabled, "未配置快照归档")
	ErrStatsDisabled   = errx.NewBiz(CodeStatsDisabled, "未配置历史统计")
)
