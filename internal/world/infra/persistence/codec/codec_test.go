package codec

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompress_可还原(t *testing.T) {
	raw := []byte(strings.Repeat(`{"x":"-12","y":-12}`, 200))
	packed, err := Compress(raw)
	if err != nil {
		t.Fatalf("Compress err=%v", err)
	}
	if len(packed) >= len(raw) {
		t.Fatalf("期望重复数据被压缩, packed=%d raw=%d", len(packed), len(raw))
	}
	got, err := Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress err=%v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("解压结果与原文不一致")
	}
	if _, err := Decompress([]byte("not zstd")); err == nil {
		t.Fatalf("期望非法数据解压失败")
	}
}

func TestDigest_稳定且区分内容(t *testing.T) {
	a := Digest([]byte("snapshot-a"))
	if len(a) != 64 || a != Digest([]byte("snapshot-a")) {
		t.Fatalf("期望 64 位稳定摘要, got=%q", a)
	}
	if a == Digest([]byte("snapshot-b")) {
		t.Fatalf("期望不同内容摘要不同")
	}
}
