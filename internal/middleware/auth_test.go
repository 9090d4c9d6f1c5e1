package middleware

import (
	"diary_backend/internal/config"
	"diary_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-0123456789-0123456789"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func echoIdentity(c *gin.Context) {
	claims := util.GetIdentityFromContext(c)
	if claims == nil {
		c.JSON(http.StatusOK, gin.H{"anonId": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"anonId": claims.AnonID})
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), echoIdentity)

	token, err := util.GenerateJWT("anon-1", "anonymous", cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("签发失败: %v", err)
	}

	tests := []struct {
		name     string
		header   string
		query    string
		wantCode int
	}{
		{"无令牌", "", "", http.StatusUnauthorized},
		{"伪造令牌", "Bearer not.a.token", "", http.StatusUnauthorized},
		{"头部令牌", "Bearer " + token, "", http.StatusOK},
		{"查询串令牌", "", "?token=" + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Errorf("状态码 = %d, 期望 %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestTryAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	r := gin.New()
	r.GET("/open", TryAuthMiddleware(cfg), echoIdentity)

	// 无令牌放行为游客
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("游客请求状态码 = %d, 期望 200", w.Code)
	}

	// 有效令牌注入身份
	token, _ := util.GenerateJWT("anon-1", "anonymous", cfg.JWT.Secret, cfg.JWT.ExpireTime)
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200", w.Code)
	}
	if got := w.Body.String(); got != `{"anonId":"anon-1"}` {
		t.Errorf("身份回显 = %s", got)
	}

	// 坏令牌不拦截，只当游客
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer bad.token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("坏令牌状态码 = %d, 期望 200", w.Code)
	}
}
