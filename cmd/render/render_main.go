package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"KingdomsMap/internal/plan"
	"KingdomsMap/internal/render/svg"
	"KingdomsMap/internal/shared/config"
	"KingdomsMap/internal/shared/logs"
	"KingdomsMap/internal/world/app"
	"KingdomsMap/internal/world/app/port"
	"KingdomsMap/internal/world/infra/fetch"
	"KingdomsMap/modules/kit/logx"
	"KingdomsMap/modules/kit/tracex"
)

func main() {
	cfgPath := flag.String("config", "", "配置文件路径，默认向上查找 configs/conf.yml")
	in := flag.String("in", "", "从本地 JSON 文件读取快照，不请求 API")
	out := flag.String("out", "", "输出 SVG 路径，默认取 render.output")
	planPath := flag.String("plan", "", "YAML 绘制计划，覆盖配置里的 kingdoms 分组")
	size := flag.Int("size", 0, "画布边长，默认取 render.size")
	flag.Parse()

	config.MustLoad(*cfgPath)
	conf := config.Get()
	if err := logs.Init("render", conf.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()

	if err := run(conf, *in, *out, *planPath, *size); err != nil {
		logx.ReportSysError(context.Background(), logs.X(), logx.NewSysLog("render", err))
		os.Exit(1)
	}
}

func run(conf config.Config, in, out, planPath string, size int) error {
	ctx := tracex.Start(context.Background(), "render")
	l := logs.X()

	var source port.SnapshotSource = fetch.NewClient(conf.API, l)
	if in != "" {
		source = fetch.FileSource{Path: in}
	}

	entries := conf.Plan()
	if planPath != "" {
		var err error
		if entries, err = plan.LoadFile(planPath); err != nil {
			return err
		}
	}

	w, err := app.NewWorldService(source, l).Refresh(ctx)
	if err != nil {
		return err
	}

	if out == "" {
		out = conf.Render.Output
	}
	if size == 0 {
		size = conf.Render.Size
	}
	if err := svg.RenderFile(out, w, entries, svg.Options{Size: size}); err != nil {
		return err
	}
	l.WithContext(ctx).Info("map rendered",
		zap.String("world", w.Name),
		zap.Int("kingdoms", len(entries)),
		zap.String("out", out),
	)
	fmt.Println(out)
	return nil
}
