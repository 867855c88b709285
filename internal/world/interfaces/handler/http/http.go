package http

import (
	"bytes"
	"context"
	nethttp "net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"KingdomsMap/internal/plan"
	"KingdomsMap/internal/render/svg"
	"KingdomsMap/internal/shared/transport"
	"KingdomsMap/internal/shared/transport/http/middleware"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/interfaces/handler"
	"KingdomsMap/internal/world/interfaces/handler/http/dto"
	"KingdomsMap/modules/kit/errx"
	"KingdomsMap/modules/kit/logx"
)

const maxRenderSize = 4096

// WorldReader 读取与刷新当前世界，由 actor.Runtime 实现。
type WorldReader interface {
	World(ctx context.Context) (*entity.GameWorld, int, error)
	Refresh(ctx context.Context, reason string) (*entity.GameWorld, int, error)
}

type HistoryReader interface {
	History(ctx context.Context, kid entity.KingdomID, limit int) ([]entity.KingdomStat, error)
}

type Deps struct {
	Worlds  WorldReader
	History HistoryReader
	// Plan 和 RenderSize 每次请求时读取，配置热更新后立即生效
	Plan       func() []plan.Entry
	RenderSize func() int
	JWTSecret  []byte
	Log        logx.Logger
}

type HttpHandler struct {
	Deps
}

func NewHttpHandler(d Deps) *HttpHandler {
	if d.Log == nil {
		d.Log = logx.Nop()
	}
	if d.Plan == nil {
		d.Plan = func() []plan.Entry { return nil }
	}
	if d.RenderSize == nil {
		d.RenderSize = func() int { return svg.DefaultSize }
	}
	return &HttpHandler{Deps: d}
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/world", h.GetWorld)
	group.GET("/kingdoms", h.ListKingdoms)
	group.GET("/kingdoms/:name/villages", h.KingdomVillages)
	group.GET("/kingdoms/:name/history", h.KingdomHistory)
	group.GET("/players/:name/villages", h.PlayerVillages)
	group.GET("/cells/:x/:y", h.GetCell)
	group.GET("/map.svg", h.MapSVG)

	admin := group.Group("/admin", middleware.Auth(h.JWTSecret))
	admin.POST("/refresh", h.Refresh)
}

func (h *HttpHandler) GetWorld(c *gin.Context) {
	ctx := c.Request.Context()
	w, version, err := h.Worlds.World(ctx)
	if err != nil {
		h.error(ctx, c, "world.get", err)
		return
	}
	h.ok(c, dto.NewWorldView(w, version))
}

func (h *HttpHandler) ListKingdoms(c *gin.Context) {
	ctx := c.Request.Context()
	w, _, err := h.Worlds.World(ctx)
	if err != nil {
		h.error(ctx, c, "kingdom.list", err)
		return
	}
	sums := w.KingdomSummaries()
	out := make([]dto.KingdomView, 0, len(sums))
	for _, s := range sums {
		out = append(out, dto.NewKingdomView(s))
	}
	h.ok(c, out)
}

func (h *HttpHandler) KingdomVillages(c *gin.Context) {
	ctx := c.Request.Context()
	w, _, err := h.Worlds.World(ctx)
	if err != nil {
		h.error(ctx, c, "kingdom.villages", err)
		return
	}
	name := c.Param("name")
	kid, ok := entity.FindByName(w.Kingdoms, name)
	if !ok {
		h.error(ctx, c, "kingdom.villages", kingdomNotFound(name))
		return
	}
	h.ok(c, dto.NewVillageViews(w.KingdomVillages(kid)))
}

func (h *HttpHandler) KingdomHistory(c *gin.Context) {
	ctx := c.Request.Context()
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		h.error(ctx, c, "kingdom.history", err)
		return
	}
	w, _, err := h.Worlds.World(ctx)
	if err != nil {
		h.error(ctx, c, "kingdom.history", err)
		return
	}
	name := c.Param("name")
	kid, ok := entity.FindByName(w.Kingdoms, name)
	if !ok {
		h.error(ctx, c, "kingdom.history", kingdomNotFound(name))
		return
	}
	if h.History == nil {
		h.ok(c, []dto.KingdomStatView{})
		return
	}
	stats, err := h.History.History(ctx, kid, limit)
	if err != nil {
		h.error(ctx, c, "kingdom.history", err)
		return
	}
	out := make([]dto.KingdomStatView, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.NewKingdomStatView(s))
	}
	h.ok(c, out)
}

func (h *HttpHandler) PlayerVillages(c *gin.Context) {
	ctx := c.Request.Context()
	w, _, err := h.Worlds.World(ctx)
	if err != nil {
		h.error(ctx, c, "player.villages", err)
		return
	}
	name := c.Param("name")
	pid, ok := entity.FindByName(w.Players, name)
	if !ok {
		h.error(ctx, c, "player.villages",
			errx.ErrNotFound.WithMsgf("player %q not found", name).WithData("name", name))
		return
	}
	h.ok(c, dto.NewVillageViews(w.PlayerVillages(pid)))
}

func (h *HttpHandler) GetCell(c *gin.Context) {
	ctx := c.Request.Context()
	x, errX := strconv.Atoi(c.Param("x"))
	y, errY := strconv.Atoi(c.Param("y"))
	if errX != nil || errY != nil {
		h.fail(c, transport.InvalidParam, "坐标必须是整数")
		return
	}
	w, _, err := h.Worlds.World(ctx)
	if err != nil {
		h.error(ctx, c, "cell.get", err)
		return
	}
	at := entity.Coord{X: x, Y: y}
	cell, ok := w.CellAt(at)
	if !ok {
		h.error(ctx, c, "cell.get",
			errx.ErrNotFound.WithMsgf("cell (%d,%d) not found", x, y))
		return
	}
	h.ok(c, dto.NewCellView(w, at, cell))
}

func (h *HttpHandler) MapSVG(c *gin.Context) {
	ctx := c.Request.Context()
	size, err := queryInt(c, "size", h.RenderSize())
	if err != nil || size > maxRenderSize {
		h.fail(c, transport.InvalidParam, "size 参数有误")
		return
	}
	w, _, err := h.Worlds.World(ctx)
	if err != nil {
		h.error(ctx, c, "map.svg", err)
		return
	}

	var buf bytes.Buffer
	if err := svg.Render(&buf, w, h.Plan(), svg.Options{Size: size}); err != nil {
		h.error(ctx, c, "map.svg", err)
		return
	}
	c.Data(nethttp.StatusOK, "image/svg+xml", buf.Bytes())
}

func (h *HttpHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	w, version, err := h.Worlds.Refresh(ctx, "admin:"+middleware.Operator(c))
	if err != nil {
		h.error(ctx, c, "world.refresh", err)
		return
	}
	h.ok(c, dto.NewWorldView(w, version))
}

func (h *HttpHandler) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}

func (h *HttpHandler) error(ctx context.Context, c *gin.Context, action string, err error) {
	code, msg := handler.HandleError(ctx, h.Log, action, err)
	h.fail(c, code, msg)
}

func kingdomNotFound(name string) error {
	return errx.ErrNotFound.WithMsgf("kingdom %q not found", name).WithData("name", name)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errx.ErrReqParamERR.WithMsgf("%s 参数有误", key).WithData(key, raw)
	}
	return v, nil
}
