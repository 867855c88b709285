package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"KingdomsMap/internal/plan"
	"KingdomsMap/internal/shared/security"
	"KingdomsMap/internal/shared/transport"
	"KingdomsMap/internal/world/actors"
	"KingdomsMap/internal/world/builder"
	"KingdomsMap/internal/world/entity"
	"KingdomsMap/internal/world/infra/persistence/memory"
	"KingdomsMap/internal/world/snapshot/snapshottest"
)

var testSecret = []byte("test-secret")

type fakeWorlds struct {
	world     *entity.GameWorld
	refreshes int
}

func (f *fakeWorlds) World(context.Context) (*entity.GameWorld, int, error) {
	if f.world == nil {
		return nil, 0, actors.ErrWorldNotReady
	}
	return f.world, 1, nil
}

func (f *fakeWorlds) Refresh(context.Context, string) (*entity.GameWorld, int, error) {
	f.refreshes++
	return f.world, 1 + f.refreshes, nil
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newTestEngine(t *testing.T, worlds *fakeWorlds, history HistoryReader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e := gin.New()
	h := NewHttpHandler(Deps{
		Worlds:    worlds,
		History:   history,
		Plan:      func() []plan.Entry { return plan.FromGroups(plan.Groups{Us: "ALPHA"}, nil) },
		JWTSecret: testSecret,
	})
	h.RegisterRoutes(e.Group(""))
	return e
}

func sampleWorlds(t *testing.T) *fakeWorlds {
	t.Helper()
	w, err := builder.New(nil).BuildRaw([]byte(snapshottest.SampleJSON))
	if err != nil {
		t.Fatalf("BuildRaw err=%v", err)
	}
	return &fakeWorlds{world: w}
}

func do(t *testing.T, e *gin.Engine, method, path, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal %s err=%v body=%s", path, err, w.Body.String())
		}
	}
	return w, env
}

func TestKingdomVillages_按玩家顺序返回(t *testing.T) {
	e := newTestEngine(t, sampleWorlds(t), nil)

	_, env := do(t, e, nethttp.MethodGet, "/kingdoms/ALPHA/villages", "")
	if env.Code != transport.OK {
		t.Fatalf("期望成功, got=%+v", env)
	}
	var vs []struct {
		Name string `json:"name"`
		X    int    `json:"x"`
		Y    int    `json:"y"`
	}
	_ = json.Unmarshal(env.Data, &vs)
	if len(vs) != 3 || vs[0].Name != "Alice Main" || vs[1].Name != "Bob One" || vs[2].Name != "Bob Two" {
		t.Fatalf("村庄顺序不符, got=%+v", vs)
	}
	if vs[1].X != -12 || vs[1].Y != -12 {
		t.Fatalf("期望字符串坐标被转换, got=%+v", vs[1])
	}

	_, env = do(t, e, nethttp.MethodGet, "/kingdoms/GHOST/villages", "")
	if env.Code != transport.NotFound {
		t.Fatalf("期望未知王国 404, got=%+v", env)
	}
}

func TestPlayerVillages(t *testing.T) {
	e := newTestEngine(t, sampleWorlds(t), nil)

	_, env := do(t, e, nethttp.MethodGet, "/players/erin/villages", "")
	if env.Code != transport.OK || string(env.Data) != "[]" {
		t.Fatalf("期望无村庄玩家返回空列表, got=%+v data=%s", env, env.Data)
	}
	_, env = do(t, e, nethttp.MethodGet, "/players/nobody/villages", "")
	if env.Code != transport.NotFound {
		t.Fatalf("期望未知玩家 404, got=%+v", env)
	}
}

func TestGetCell(t *testing.T) {
	e := newTestEngine(t, sampleWorlds(t), nil)

	_, env := do(t, e, nethttp.MethodGet, "/cells/1/2", "")
	var cell struct {
		Kind    string `json:"kind"`
		Kingdom string `json:"kingdom"`
		Player  string `json:"player"`
	}
	_ = json.Unmarshal(env.Data, &cell)
	if env.Code != transport.OK || cell.Kind != "occupied" || cell.Kingdom != "ALPHA" || cell.Player != "alice" {
		t.Fatalf("地块 (1,2) 不符, got=%+v", cell)
	}

	_, env = do(t, e, nethttp.MethodGet, "/cells/0/0", "")
	_ = json.Unmarshal(env.Data, &cell)
	if cell.Kind != "other" {
		t.Fatalf("期望 (0,0) 为 other, got=%+v", cell)
	}

	_, env = do(t, e, nethttp.MethodGet, "/cells/x/1", "")
	if env.Code != transport.InvalidParam {
		t.Fatalf("期望非法坐标 400, got=%+v", env)
	}
	_, env = do(t, e, nethttp.MethodGet, "/cells/99/99", "")
	if env.Code != transport.NotFound {
		t.Fatalf("期望不存在的地块 404, got=%+v", env)
	}
}

func TestGetWorld_未加载(t *testing.T) {
	e := newTestEngine(t, &fakeWorlds{}, nil)
	_, env := do(t, e, nethttp.MethodGet, "/world", "")
	if env.Code != transport.WorldNotReady {
		t.Fatalf("期望 409, got=%+v", env)
	}
}

func TestListKingdoms(t *testing.T) {
	e := newTestEngine(t, sampleWorlds(t), nil)
	_, env := do(t, e, nethttp.MethodGet, "/kingdoms", "")
	var ks []struct {
		Name     string `json:"name"`
		Villages int    `json:"villages"`
	}
	_ = json.Unmarshal(env.Data, &ks)
	if len(ks) != 2 || ks[0].Name != "ALPHA" || ks[0].Villages != 3 {
		t.Fatalf("王国列表不符, got=%+v", ks)
	}
}

func TestKingdomHistory(t *testing.T) {
	stats := memory.NewStatsRepo()
	_ = stats.SaveStats(context.Background(), []entity.KingdomStat{{
		At:             time.Unix(1700000000, 0).UTC(),
		KingdomSummary: entity.KingdomSummary{ID: 2, Name: "BETA", VictoryPoints: 50},
	}})
	e := newTestEngine(t, sampleWorlds(t), stats)

	_, env := do(t, e, nethttp.MethodGet, "/kingdoms/BETA/history?limit=5", "")
	var hist []struct {
		VictoryPoints int `json:"victory_points"`
	}
	_ = json.Unmarshal(env.Data, &hist)
	if env.Code != transport.OK || len(hist) != 1 || hist[0].VictoryPoints != 50 {
		t.Fatalf("历史不符, got=%+v", env)
	}

	_, env = do(t, e, nethttp.MethodGet, "/kingdoms/BETA/history?limit=-1", "")
	if env.Code != transport.InvalidParam {
		t.Fatalf("期望非法 limit 400, got=%+v", env)
	}
}

func TestMapSVG(t *testing.T) {
	e := newTestEngine(t, sampleWorlds(t), nil)
	w, _ := do(t, e, nethttp.MethodGet, "/map.svg?size=256", "")
	if w.Code != nethttp.StatusOK || w.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("期望返回 svg, status=%d ct=%s", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), `width="256"`) {
		t.Fatalf("期望画布 256")
	}

	_, env := do(t, e, nethttp.MethodGet, "/map.svg?size=abc", "")
	if env.Code != transport.InvalidParam {
		t.Fatalf("期望非法 size 400, got=%+v", env)
	}
}

func TestAdminRefresh_需要令牌(t *testing.T) {
	worlds := sampleWorlds(t)
	e := newTestEngine(t, worlds, nil)

	w, _ := do(t, e, nethttp.MethodPost, "/admin/refresh", "")
	if w.Code != nethttp.StatusUnauthorized || worlds.refreshes != 0 {
		t.Fatalf("期望无令牌 401, got=%d refreshes=%d", w.Code, worlds.refreshes)
	}

	token, err := security.Award(testSecret, "ops", time.Hour)
	if err != nil {
		t.Fatalf("Award err=%v", err)
	}
	_, env := do(t, e, nethttp.MethodPost, "/admin/refresh", token)
	if env.Code != transport.OK || worlds.refreshes != 1 {
		t.Fatalf("期望刷新成功, got=%+v refreshes=%d", env, worlds.refreshes)
	}
}
