package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"KingdomsMap/internal/plan"
)

const sampleConf = `
api:
  key: secret-key
  min_interval: 90s
kingdoms:
  us: ALPHA
  allies: [BETA]
  enemies: [GAMMA]
palette:
  enemies: "#010203"
mongodb:
  uri: mongodb://localhost:27017
log:
  level: debug
`

func writeConf(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "configs", "conf.yml")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir err=%v", err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write err=%v", err)
	}
	return p
}

func TestLoad_解析颜色时长并套用默认值(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	p := writeConf(t, t.TempDir(), sampleConf)

	if err := Load(p); err != nil {
		t.Fatalf("Load err=%v", err)
	}
	c := Get()
	if c.API.Key != "secret-key" || c.API.MinInterval != 90*time.Second {
		t.Fatalf("api 配置不符合预期: %+v", c.API)
	}
	if c.API.URL == "" || c.API.Timeout != 30*time.Second {
		t.Fatalf("期望套用 api 默认值, got=%+v", c.API)
	}
	if c.Render.Size != 1024 || c.Render.Output != "map.svg" {
		t.Fatalf("期望 render 默认值, got=%+v", c.Render)
	}
	if got := c.Palette[plan.GroupEnemies]; got != (plan.Color{R: 1, G: 2, B: 3}) {
		t.Fatalf("期望调色板颜色被解析, got=%+v", got)
	}
	entries := c.Plan()
	if len(entries) != 3 || entries[0].Name != "ALPHA" || entries[2].Color != (plan.Color{R: 1, G: 2, B: 3}) {
		t.Fatalf("绘制计划不符合预期: %+v", entries)
	}
}

func TestLoad_环境变量覆盖(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("TSM_API_KEY", "from-env")
	p := writeConf(t, t.TempDir(), sampleConf)

	if err := Load(p); err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if got := Get().API.Key; got != "from-env" {
		t.Fatalf("期望环境变量覆盖 api.key, got=%q", got)
	}
}

func TestFindConfigUpward_向上查找(t *testing.T) {
	root := t.TempDir()
	want := writeConf(t, root, sampleConf)
	deep := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatalf("mkdir err=%v", err)
	}
	got, err := findConfigUpward(deep)
	if err != nil || got != want {
		t.Fatalf("期望找到 %s, got=%s err=%v", want, got, err)
	}
}

func TestLoad_文件不存在返回错误(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("期望文件不存在时报错")
	}
}
