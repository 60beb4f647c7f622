package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/recommendations/internal/pkg/logger"
	"github.com/pratik-mahalle/recommendations/internal/pkg/utils"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequireContentType(t *testing.T) {
	handler := RequireContentType("application/json")(okHandler)

	tests := []struct {
		name           string
		contentType    string
		expectedStatus int
	}{
		{name: "json", contentType: "application/json", expectedStatus: http.StatusOK},
		{name: "json with charset", contentType: "application/json; charset=utf-8", expectedStatus: http.StatusOK},
		{name: "missing", contentType: "", expectedStatus: http.StatusUnsupportedMediaType},
		{name: "form", contentType: "application/x-www-form-urlencoded", expectedStatus: http.StatusUnsupportedMediaType},
		{name: "text", contentType: "text/plain", expectedStatus: http.StatusUnsupportedMediaType},
		{name: "garbage", contentType: ";;", expectedStatus: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(`{}`))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			if w.Code == http.StatusUnsupportedMediaType {
				var resp utils.ErrorResponse
				json.NewDecoder(w.Body).Decode(&resp)
				if resp.Error.Code != "UNSUPPORTED_MEDIA_TYPE" {
					t.Errorf("error code = %s", resp.Error.Code)
				}
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || w.Header().Get(RequestIDHeader) != seen {
		t.Errorf("generated request id = %q, header = %q", seen, w.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "abc-123" {
		t.Errorf("propagated request id = %q, want abc-123", seen)
	}

	for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("a", 65)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, bad)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		if seen == bad || seen == "" {
			t.Errorf("request id %q should be replaced, got %q", bad, seen)
		}
	}
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "error", Format: "json", Output: &buf})
	r := chi.NewRouter()
	r.Use(Recovery(log))
	r.Get("/recommendations/{id}", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recommendations/3", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp utils.ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Success || resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("body = %+v", resp)
	}
	if strings.Contains(resp.Error.Message, "boom") {
		t.Errorf("panic value leaked to client: %q", resp.Error.Message)
	}
	if !strings.Contains(buf.String(), `"route":"/recommendations/{id}"`) {
		t.Errorf("panic log missing route: %s", buf.String())
	}
}

func TestLogger_WritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Format: "json", Output: &buf})
	handler := RequestID()(Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddLogField(w, "recommendation_id", 7)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("{}"))
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/recommendations?x=1", nil))

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if line["method"] != "POST" || line["path"] != "/recommendations" || line["query"] != "x=1" {
		t.Errorf("log line = %v", line)
	}
	if line["status"] != float64(http.StatusCreated) || line["bytes"] != float64(2) {
		t.Errorf("status/bytes = %v/%v", line["status"], line["bytes"])
	}
	if line["recommendation_id"] != float64(7) {
		t.Errorf("custom field missing: %v", line)
	}
	if id, _ := line["request_id"].(string); id == "" {
		t.Error("request_id missing from log line")
	}
}

func TestLogger_RecordsRouteAndRecommendationID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Format: "json", Output: &buf})

	r := chi.NewRouter()
	r.Use(Logger(log))
	r.Put("/recommendations/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/recommendations/42/like", nil))
	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if line["route"] != "/recommendations/{id}/like" {
		t.Errorf("route = %v", line["route"])
	}
	if line["recommendation_id"] != "42" {
		t.Errorf("recommendation_id = %v", line["recommendation_id"])
	}

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	line = nil
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if line["route"] != "/health" {
		t.Errorf("route = %v", line["route"])
	}
	if _, ok := line["recommendation_id"]; ok {
		t.Errorf("recommendation_id logged for %v", line["route"])
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	handler := limiter.Middleware(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}

	// a different client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client status = %d, want 200", w.Code)
	}
}

func TestRateLimiter_CleanupKeepsBusyClients(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)
	limiter.getLimiter("busy").Allow()
	limiter.getLimiter("idle")

	limiter.Cleanup()

	if _, ok := limiter.limiters["busy"]; !ok {
		t.Error("Cleanup() removed a limiter with spent tokens")
	}
	if _, ok := limiter.limiters["idle"]; ok {
		t.Error("Cleanup() kept a full limiter")
	}
}

func TestSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	SecurityHeaders(false)(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("nosniff header missing")
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should be off")
	}

	w = httptest.NewRecorder()
	SecurityHeaders(true)(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS should be on")
	}

	w = httptest.NewRecorder()
	SecurityHeaders(false)(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if csp := w.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "script-src 'self'") {
		t.Errorf("swagger CSP = %q", csp)
	}

	w = httptest.NewRecorder()
	SecurityHeaders(false)(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/js/rest_api.js", nil))
	if csp := w.Header().Get("Content-Security-Policy"); csp != uiCSP {
		t.Errorf("static CSP = %q", csp)
	}
}
