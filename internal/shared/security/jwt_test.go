package security

import (
	"errors"
	"testing"
	"time"
)

func TestAward_缺少密钥应失败(t *testing.T) {
	if _, err := Award(nil, "ops", 0); !errors.Is(err, ErrJWTSecretMissing) {
		t.Fatalf("期望密钥为空时返回 ErrJWTSecretMissing, got=%v", err)
	}
}

func TestAwardParse_正常签发并解析(t *testing.T) {
	secret := []byte("test-secret-123")

	token, err := Award(secret, "ops", time.Hour)
	if err != nil {
		t.Fatalf("Award err=%v", err)
	}
	if token == "" {
		t.Fatalf("期望 token 非空")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken err=%v", err)
	}
	if claims == nil || claims.Operator != "ops" {
		t.Fatalf("期望 claims.Operator==ops, got=%v", claims)
	}
}

func TestParseToken_密钥不符或过期应失败(t *testing.T) {
	token, _ := Award([]byte("a"), "ops", time.Hour)
	if _, err := ParseToken([]byte("b"), token); err == nil {
		t.Fatalf("期望密钥不符时失败")
	}

	short, _ := Award([]byte("a"), "ops", time.Nanosecond)
	time.Sleep(time.Second + 10*time.Millisecond)
	if _, err := ParseToken([]byte("a"), short); err == nil {
		t.Fatalf("期望过期 token 解析失败")
	}
}
