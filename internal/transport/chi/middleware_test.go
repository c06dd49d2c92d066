package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	h := CORSMiddleware([]string{"https://cards.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/smart-pills", nil)
	req.Header.Set("Origin", "https://cards.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://cards.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestCORSMiddleware_DeniedOrigin(t *testing.T) {
	h := CORSMiddleware([]string{"https://cards.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/smart-pills", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want unset", got)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("request should still pass through, status = %d", rec.Code)
	}
}

func TestCORSMiddleware_EmptyListAllowsAny(t *testing.T) {
	h := CORSMiddleware(nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	h := CORSMiddleware(nil)(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/saved-searches", nil)
	req.Header.Set("Origin", "https://cards.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("missing Allow-Methods on preflight")
	}
}

func TestRateLimitMiddleware_EnforcesBurst(t *testing.T) {
	h := RateLimitMiddleware(1, 2)(okHandler())

	statuses := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/smart-pills", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("burst requests should pass: %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited: %v", statuses)
	}
}

func TestRateLimitMiddleware_PerClient(t *testing.T) {
	h := RateLimitMiddleware(1, 1)(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/api/smart-pills", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first client: %d", rec.Code)
	}

	// A different client gets its own bucket.
	second := httptest.NewRequest(http.MethodGet, "/api/smart-pills", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Errorf("second client should not share the first bucket: %d", rec.Code)
	}
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	h := RateLimitMiddleware(0, 0)(okHandler())

	for range 10 {
		req := httptest.NewRequest(http.MethodGet, "/api/smart-pills", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("disabled limiter rejected a request: %d", rec.Code)
		}
	}
}

func TestClientIP_ForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := clientIP(req); got != "203.0.113.7" {
		t.Errorf("clientIP = %q", got)
	}
}
