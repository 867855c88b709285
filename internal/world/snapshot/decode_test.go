package snapshot

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"KingdomsMap/internal/world/snapshot/snapshottest"
	"KingdomsMap/modules/kit/errx"
)

func TestFlexInt_字符串与数字解码一致(t *testing.T) {
	var a, b FlexInt
	if err := json.Unmarshal([]byte(`"-12"`), &a); err != nil {
		t.Fatalf("解码字符串坐标失败: %v", err)
	}
	if err := json.Unmarshal([]byte(`-12`), &b); err != nil {
		t.Fatalf("解码数字坐标失败: %v", err)
	}
	if a != b || a.Int() != -12 {
		t.Fatalf("期望 \"-12\" 与 -12 解码一致, got=%d,%d", a, b)
	}
}

func TestFlexInt_拒绝其他类型(t *testing.T) {
	for _, in := range []string{`null`, `true`, `{}`, `[]`, `"12a"`, `""`, `1.5`, `1e3`} {
		var n FlexInt
		if err := json.Unmarshal([]byte(in), &n); err == nil {
			t.Fatalf("期望 %s 解码失败, got=%d", in, n)
		}
	}
}

func TestFlexCode_数字归一为字符串(t *testing.T) {
	var a, b FlexCode
	if err := json.Unmarshal([]byte(`2`), &a); err != nil {
		t.Fatalf("err=%v", err)
	}
	if err := json.Unmarshal([]byte(`"2"`), &b); err != nil {
		t.Fatalf("err=%v", err)
	}
	if a != "2" || a != b {
		t.Fatalf("期望 2 与 \"2\" 都解码为 \"2\", got=%q,%q", a, b)
	}
	var c FlexCode
	if err := json.Unmarshal([]byte(`false`), &c); err == nil {
		t.Fatalf("期望 bool 编码解码失败")
	}
}

func TestDecode_样本快照(t *testing.T) {
	data, err := Decode([]byte(snapshottest.SampleJSON))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if data.GameWorld.Name != "com3" || data.GameWorld.StartTime != 1700000000 {
		t.Fatalf("gameworld 解码不符合预期: %+v", data.GameWorld)
	}
	if len(data.Kingdoms) != 2 || len(data.Players) != 5 || len(data.Map.Cells) != 7 {
		t.Fatalf("数量不符合预期 kingdoms=%d players=%d cells=%d", len(data.Kingdoms), len(data.Players), len(data.Map.Cells))
	}
	if data.Map.Radius != 10 {
		t.Fatalf("期望 radius=10, got=%d", data.Map.Radius)
	}
	bob := data.Players[1]
	if bob.TribeID != "2" || bob.Role != 3 {
		t.Fatalf("期望 bob tribe=2 role=3, got=%q %d", bob.TribeID, bob.Role)
	}
	v := bob.Villages[0]
	if v.X != -12 || v.Y != -12 || v.VillageID != 101 {
		t.Fatalf("期望 \"-12\" 与 -12 坐标一致, got=%+v", v)
	}
	if data.Map.Landscapes[2] != "lake" {
		t.Fatalf("期望 landscapes[2]=lake, got=%v", data.Map.Landscapes)
	}
}

func TestDecode_缺字段报出字段路径(t *testing.T) {
	raw := strings.Replace(snapshottest.SampleJSON, `"x": 5, `, ``, 1)
	_, err := Decode([]byte(raw))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("期望 ErrDecode, got=%v", err)
	}
	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("期望 *errx.Error, got=%T", err)
	}
	field, _ := e.Data()["field"].(string)
	if field != "/response/players/2/villages/0" {
		t.Fatalf("期望定位到 carol 的村庄, got=%q detail=%v", field, e.Data()["detail"])
	}
}

func TestDecode_错误类型报错(t *testing.T) {
	raw := strings.Replace(snapshottest.SampleJSON, `"y": 2,`, `"y": true,`, 1)
	_, err := Decode([]byte(raw))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("期望 ErrDecode, got=%v", err)
	}
	var e *errx.Error
	errors.As(err, &e)
	if field, _ := e.Data()["field"].(string); field != "/response/players/0/villages/0/y" {
		t.Fatalf("期望定位到 alice 村庄的 y, got=%q", field)
	}
}

func TestDecode_非法JSON与尾随数据(t *testing.T) {
	for _, raw := range []string{`{`, `not json`, `{"response": {}} {}`} {
		if _, err := Decode([]byte(raw)); !errors.Is(err, ErrDecode) {
			t.Fatalf("期望 %q 返回 ErrDecode, got=%v", raw, err)
		}
	}
}

func TestDecode_浮点数坐标报错(t *testing.T) {
	for _, x := range []string{`3.5`, `3.0`, `"99999999999999999999"`} {
		raw := strings.Replace(snapshottest.SampleJSON, `"x": 3,`, `"x": `+x+`,`, 1)
		_, err := Decode([]byte(raw))
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("期望 x=%s 返回 ErrDecode, got=%v", x, err)
		}
		var e *errx.Error
		if !errors.As(err, &e) {
			t.Fatalf("期望 *errx.Error, got=%T", err)
		}
		field, _ := e.Data()["field"].(string)
		if !strings.HasSuffix(field, "/x") {
			t.Fatalf("期望 x=%s 定位到坐标字段, got=%q detail=%v", x, field, e.Data()["detail"])
		}
	}
}
