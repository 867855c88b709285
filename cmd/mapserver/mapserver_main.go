package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"KingdomsMap/internal/plan"
	"KingdomsMap/internal/shared/config"
	shareddb "KingdomsMap/internal/shared/infrastructure/db"
	sharedmongo "KingdomsMap/internal/shared/infrastructure/mongo"
	"KingdomsMap/internal/shared/logs"
	"KingdomsMap/internal/shared/security"
	transporthttp "KingdomsMap/internal/shared/transport/http"
	"KingdomsMap/internal/shared/transport/ws"
	worldactor "KingdomsMap/internal/world/actor"
	"KingdomsMap/internal/world/actors"
	"KingdomsMap/internal/world/app"
	"KingdomsMap/internal/world/infra/fetch"
	"KingdomsMap/internal/world/infra/persistence/memory"
	worldmongo "KingdomsMap/internal/world/infra/persistence/mongodb"
	worldmysql "KingdomsMap/internal/world/infra/persistence/mysql"
	"KingdomsMap/internal/world/interfaces"
	httphandler "KingdomsMap/internal/world/interfaces/handler/http"
)

func main() {
	cfgPath := flag.String("config", "", "配置文件路径，默认向上查找 configs/conf.yml")
	issueToken := flag.String("issue-token", "", "为指定操作人签发管理令牌后退出")
	flag.Parse()

	config.MustLoad(*cfgPath)
	conf := config.Get()
	if err := logs.Init("mapserver", conf.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()

	secret := []byte(os.Getenv("JWT_SECRET"))
	if *issueToken != "" {
		token, err := security.Award(secret, *issueToken, 0)
		if err != nil {
			logs.Fatal("issue token failed", zap.Error(err))
		}
		fmt.Println(token)
		return
	}

	baseLogger := logs.X()
	opts := []app.Option{}

	// 归档：配置了 mongodb 用 mongodb，否则用进程内存
	if conf.MongoDB.URI != "" {
		mongoClient, err := sharedmongo.Open(conf.MongoDB, logs.Logger())
		if err != nil {
			logs.Fatal("open mongodb failed", zap.Error(err))
		}
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
		archive := worldmongo.NewSnapshotArchive(mongoClient.Database(conf.MongoDB.Database))
		if err := archive.EnsureIndexes(context.Background()); err != nil {
			logs.Warn("ensure snapshot index failed", zap.Error(err))
		}
		opts = append(opts, app.WithArchive(archive))
	} else {
		opts = append(opts, app.WithArchive(memory.NewSnapshotArchive()))
	}

	// 历史统计：配置了 mysql 用 mysql，否则用进程内存
	if conf.MySQL.Host != "" {
		gdb, err := shareddb.Open(conf.MySQL)
		if err != nil {
			logs.Fatal("open mysql failed", zap.Error(err))
		}
		stats := worldmysql.NewStatsRepo(gdb)
		if err := stats.AutoMigrate(); err != nil {
			logs.Fatal("migrate kingdom_stat failed", zap.Error(err))
		}
		opts = append(opts, app.WithStats(stats))
	} else {
		opts = append(opts, app.WithStats(memory.NewStatsRepo()))
	}

	svc := app.NewWorldService(fetch.NewClient(conf.API, baseLogger), baseLogger, opts...)

	hub := ws.NewHub(baseLogger)
	runtime := worldactor.NewRuntime(svc, hub, actors.Options{
		Interval:       conf.Refresh.Interval,
		LoadOnStart:    conf.Refresh.OnStart,
		RefreshTimeout: conf.API.Timeout + 5*time.Second,
	}, baseLogger)
	defer runtime.Shutdown()

	worldModule := interfaces.New(httphandler.Deps{
		Worlds:     runtime,
		History:    svc,
		Plan:       func() []plan.Entry { return config.Get().Plan() },
		RenderSize: func() int { return config.Get().Render.Size },
		JWTSecret:  secret,
		Log:        baseLogger,
	})

	wsRouter := ws.NewRouter(baseLogger)
	wsModules := []ws.Registrar{
		worldModule,
	}
	for _, m := range wsModules {
		m.WsRegister(wsRouter)
	}

	addr := fmt.Sprintf("%s:%d", conf.HTTPServer.Host, conf.HTTPServer.Port)
	httpServer := transporthttp.NewHttpServer(addr, nil, baseLogger)
	httpModules := []transporthttp.Registrar{
		worldModule,
	}
	for _, m := range httpModules {
		m.HttpRegister(httpServer.Group())
	}

	wsServer := ws.NewServer(wsRouter, hub, baseLogger)
	httpServer.Engine().GET("/ws", gin.WrapH(wsServer))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logs.Info("mapserver listening", zap.String("addr", addr))
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("mapserver start failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
}
