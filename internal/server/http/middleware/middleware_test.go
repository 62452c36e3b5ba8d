package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/minhdn/gameshop/internal/domain/model"
	pkgAuth "github.com/minhdn/gameshop/internal/pkg/auth"
	testhelpers "github.com/minhdn/gameshop/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthRequired(t *testing.T) {
	router := gin.New()
	router.Use(AuthRequired(testhelpers.StrategyStub{}))
	router.GET("/", func(c *gin.Context) {})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.StrategyStub{ParseFn: func(string) (int64, model.Role, error) {
		return 0, "", pkgAuth.ErrInvalidToken
	}}))
	router.GET("/", func(c *gin.Context) {})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.StrategyStub{ParseFn: func(string) (int64, model.Role, error) {
		return 0, "", context.DeadlineExceeded
	}}))
	router.GET("/", func(c *gin.Context) {})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var storedID int64
	var storedRole model.Role
	router = gin.New()
	router.Use(AuthRequired(testhelpers.StrategyStub{ParseFn: func(string) (int64, model.Role, error) {
		return 42, model.RoleAdmin, nil
	}}))
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(UserIDContextKey); ok {
			storedID = v.(int64)
		}
		if v, ok := c.Get(UserRoleContextKey); ok {
			storedRole = v.(model.Role)
		}
		c.Status(http.StatusOK)
	})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if storedID != 42 || storedRole != model.RoleAdmin {
		t.Fatalf("expected identity 42/admin, got %d/%s", storedID, storedRole)
	}
}

func TestAdminRequired(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*gin.Context)
		status int
	}{
		{name: "no role", status: http.StatusUnauthorized},
		{name: "regular user", setup: func(c *gin.Context) { c.Set(UserRoleContextKey, model.RoleUser) }, status: http.StatusForbidden},
		{name: "admin", setup: func(c *gin.Context) { c.Set(UserRoleContextKey, model.RoleAdmin) }, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				if tt.setup != nil {
					tt.setup(c)
				}
			}, AdminRequired())
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestSetAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	SetAuthCookie(c, "token")
	if got := recorder.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Value != "token" {
		t.Fatalf("expected cookie with token, got %+v", cookies)
	}
	if cookies[0].Name != authCookieName {
		t.Fatalf("unexpected cookie name %q", cookies[0].Name)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := extractToken(c); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}
	c.Request.Header.Del("Authorization")
	c.Request.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie"})
	if token := extractToken(c); token != "cookie" {
		t.Fatalf("expected token from cookie, got %q", token)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("plain"))))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}
}

func TestRequestLogger(t *testing.T) {
	var logged bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelInfo {
			logged = true
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if !logged {
		t.Fatalf("expected request to be logged")
	}
}

type responseCacheStub struct {
	entries map[string]cachedResponse
	getErr  error
	saveErr error
	saves   int
}

type cachedResponse struct {
	status int
	body   []byte
}

func newResponseCacheStub() *responseCacheStub {
	return &responseCacheStub{entries: map[string]cachedResponse{}}
}

func (s *responseCacheStub) Get(_ context.Context, key string) (int, []byte, bool, error) {
	if s.getErr != nil {
		return 0, nil, false, s.getErr
	}
	entry, ok := s.entries[key]
	return entry.status, entry.body, ok, nil
}

func (s *responseCacheStub) Save(_ context.Context, key string, status int, body []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.entries[key] = cachedResponse{status: status, body: body}
	return nil
}

func newIdempotencyRouter(cache ResponseCache, handler gin.HandlerFunc) *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	router := gin.New()
	router.POST("/", Idempotency(cache, logger), handler)
	return router
}

func TestIdempotencyWithoutKeyPassesThrough(t *testing.T) {
	cache := newResponseCacheStub()
	router := newIdempotencyRouter(cache, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", nil))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if cache.saves != 0 {
		t.Fatalf("expected no cache writes without a key, got %d", cache.saves)
	}
}

func TestIdempotencyCachesAndReplays(t *testing.T) {
	cache := newResponseCacheStub()
	calls := 0
	router := newIdempotencyRouter(cache, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if resp.Header().Get(IdempotencyHitHeader) != "" {
		t.Fatal("first request must not be a cache hit")
	}
	firstBody := resp.Body.String()

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected replayed 201, got %d", resp.Code)
	}
	if resp.Header().Get(IdempotencyHitHeader) != "true" {
		t.Fatal("expected replay marker header")
	}
	if resp.Body.String() != firstBody {
		t.Fatalf("expected identical body on replay: %q vs %q", firstBody, resp.Body.String())
	}
	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
}

func TestIdempotencySkipsRetryableOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "conflict", status: http.StatusConflict},
		{name: "internal error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newResponseCacheStub()
			router := newIdempotencyRouter(cache, func(c *gin.Context) {
				c.JSON(tt.status, gin.H{"error": "nope"})
			})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Header.Set(IdempotencyKeyHeader, "key-1")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
			if cache.saves != 0 {
				t.Fatalf("retryable outcome must not be cached, got %d writes", cache.saves)
			}
		})
	}
}

func TestIdempotencyLookupFailure(t *testing.T) {
	cache := newResponseCacheStub()
	cache.getErr = errors.New("boom")
	router := newIdempotencyRouter(cache, func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on lookup failure, got %d", resp.Code)
	}
}

func TestIdempotencySaveFailureDoesNotBreakResponse(t *testing.T) {
	cache := newResponseCacheStub()
	cache.saveErr = errors.New("boom")
	router := newIdempotencyRouter(cache, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 despite save failure, got %d", resp.Code)
	}
}
