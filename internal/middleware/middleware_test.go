package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGenerated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected a generated request ID in the response header")
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(200) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-test-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "req-test-123" {
		t.Errorf("request ID = %q, want req-test-123", got)
	}
}

func TestCORSAllowAll(t *testing.T) {
	router := gin.New()
	router.Use(CORS(nil))
	router.GET("/", func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}

func TestCORSRestrictedOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://app.example.com"}))
	router.GET("/", func(c *gin.Context) { c.Status(200) })

	tests := []struct {
		name       string
		origin     string
		method     string
		wantStatus int
		wantAllow  string
	}{
		{"allowed origin", "https://app.example.com", http.MethodGet, 200, "https://app.example.com"},
		{"disallowed origin get", "https://evil.example.com", http.MethodGet, 200, ""},
		{"disallowed origin preflight", "https://evil.example.com", http.MethodOptions, 403, ""},
		{"allowed origin preflight", "https://app.example.com", http.MethodOptions, 204, "https://app.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}

func TestBodyLimitRejectsOversized(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(16))
	router.POST("/", func(c *gin.Context) { c.Status(200) })

	body := strings.Repeat("x", 64)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/problem+json") {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestBodyLimitPassesSmallBody(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(1024))
	router.POST("/", func(c *gin.Context) { c.Status(200) })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("[]"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
