package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rajneesh001-hub/GiveEasy/utils"
)

func TestClientIPGeneric_DirectRemote(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "203.0.113.5:54321"
	ip := clientIPGeneric(req, nil)
	if ip != "203.0.113.5" {
		t.Fatalf("expected direct remote IP, got %s", ip)
	}
}

func TestClientIPGeneric_TrustedProxyXFF(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "198.51.100.10:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 198.51.100.10")
	// trustedCIDR contains the remote IP
	ip := clientIPGeneric(req, []string{"198.51.100.10"})
	if ip != "203.0.113.7" {
		t.Fatalf("expected X-Forwarded-For first value, got %s", ip)
	}
}

func TestClientIPGeneric_UntrustedProxyIgnoresXFF(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "198.51.100.11:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.8, 198.51.100.11")
	ip := clientIPGeneric(req, []string{"198.51.100.10"})
	if ip != "198.51.100.11" {
		t.Fatalf("expected remote IP when proxy untrusted, got %s", ip)
	}
}

func TestIPRateLimiterBlocksOverBudget(t *testing.T) {
	limiter := NewIPRateLimiter(3, time.Minute)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "http://example.local/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.5:54321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest("POST", "http://example.local/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.5:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over-budget request: status %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("429 response missing Retry-After header")
	}

	// A different IP is unaffected.
	req = httptest.NewRequest("POST", "http://example.local/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.6:54321"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("other IP: status %d, want 200", rec.Code)
	}
}

func TestUserRateLimiterSeparateReadWriteBudgets(t *testing.T) {
	limiter := NewUserRateLimiter(10, 2, 60)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	asUser := func(method string, uid uint) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "http://example.local/api/donations", nil)
		ctx := context.WithValue(req.Context(), utils.UserIDKey, uid)
		ctx = context.WithValue(ctx, utils.UserRoleKey, "user")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		return rec
	}

	// Exhaust the write budget; reads keep flowing.
	for i := 0; i < 2; i++ {
		if rec := asUser(http.MethodPost, 1); rec.Code != http.StatusOK {
			t.Fatalf("write %d: status %d, want 200", i+1, rec.Code)
		}
	}
	if rec := asUser(http.MethodPost, 1); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over-budget write: status %d, want 429", rec.Code)
	}
	if rec := asUser(http.MethodGet, 1); rec.Code != http.StatusOK {
		t.Fatalf("read after write exhaustion: status %d, want 200", rec.Code)
	}
	// Another user keeps their own budget.
	if rec := asUser(http.MethodPost, 2); rec.Code != http.StatusOK {
		t.Fatalf("other user write: status %d, want 200", rec.Code)
	}
}

func TestUserRateLimiterPassesUnauthenticated(t *testing.T) {
	limiter := NewUserRateLimiter(1, 1, 60)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "http://example.local/api/campaigns", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("unauthenticated request %d: status %d, want 200", i+1, rec.Code)
		}
	}
}
