package util

import (
	"testing"
	"time"
)

const testSecret = "test-secret-0123456789-0123456789"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("anon-123", "anonymous", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if claims.AnonID != "anon-123" || claims.Provider != "anonymous" {
		t.Errorf("载荷不匹配: %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("anon-123", "anonymous", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	// 换密钥验签必须失败，否则身份可伪造
	if _, err := ParseJWT(token, "another-secret-another-secret!!!"); err == nil {
		t.Error("错误密钥验签应失败")
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("anon-123", "anonymous", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Error("过期令牌验签应失败")
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not.a.token", testSecret); err == nil {
		t.Error("非法令牌验签应失败")
	}
}
