package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/statusinvest-mcp/internal/domain/dto"
	"github.com/guttosm/statusinvest-mcp/internal/domain/models"
	"github.com/guttosm/statusinvest-mcp/internal/service"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" || w.Header().Get("X-Request-ID") != w.Body.String() {
		t.Fatalf("header and context id differ: %q vs %q", w.Header().Get("X-Request-ID"), w.Body.String())
	}
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(204) })

	cases := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{"valid uuid", "0b8f3c1e-5d2a-4c47-9a51-7f0f7b0c1d2e", true},
		{"garbage", "not-a-uuid", false},
		{"absent", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set("X-Request-ID", tc.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			got := w.Header().Get("X-Request-ID")
			if (got == tc.incoming) != tc.reused || got == "" {
				t.Fatalf("incoming=%q got=%q reused=%v", tc.incoming, got, tc.reused)
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		want    int
		message string
	}{
		{"upstream failure", assertErr{}, http.StatusInternalServerError, "Failed to fetch stock data"},
		{"invalid query", fmt.Errorf("%w: finalDate", models.ErrInvalidQuery), http.StatusBadRequest, "Invalid query"},
		{"internal", &service.InternalError{Op: "indicators", Cause: "nil map"}, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/api/v1/quotes", func(c *gin.Context) { _ = c.Error(tc.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quotes?stocks=PETR4", nil))
			if w.Code != tc.want {
				t.Fatalf("code=%d, want %d", w.Code, tc.want)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not an ErrorResponse: %v (%s)", err, w.Body.String())
			}
			if body.Message != tc.message || body.ErrorDetails != tc.err.Error() || body.Timestamp.IsZero() {
				t.Fatalf("unexpected error body: %+v", body)
			}
		})
	}
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "Missing stocks", assertErr{})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Missing stocks" || body.ErrorDetails != "boom" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Internal server error" || body.ErrorDetails != "boom" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name         string
		d            time.Duration
		wantDeadline bool
	}{
		{"enabled", 50 * time.Millisecond, true},
		{"disabled", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Timeout(tc.d))
			r.GET("/", func(c *gin.Context) {
				_, ok := c.Request.Context().Deadline()
				c.JSON(200, gin.H{"deadline": ok})
			})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			want := fmt.Sprintf(`{"deadline":%v}`, tc.wantDeadline)
			if w.Body.String() != want {
				t.Fatalf("body=%s, want %s", w.Body.String(), want)
			}
		})
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}
