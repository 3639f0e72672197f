package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid header, got %q", id)
		}
		if w.Body.String() != id {
			t.Fatalf("context id %q differs from header %q", w.Body.String(), id)
		}
	})

	t.Run("reuses valid inbound id", func(t *testing.T) {
		in := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, in)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get(RequestIDHeader); got != in {
			t.Fatalf("expected %q, got %q", in, got)
		}
	})

	t.Run("replaces garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get(RequestIDHeader); got == "not-a-uuid" {
			t.Fatal("inbound garbage id was echoed")
		}
	})
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(RequestIDMiddleware(), AccessLog(logger))
	r.GET("/users/:id", func(c *gin.Context) {
		_ = c.Error(http.ErrNoLocation)
		c.String(http.StatusNotFound, "user not found")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/7", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "warning" || entry["status"] != float64(404) || entry["route"] != "/users/:id" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["request_id"] != w.Header().Get(RequestIDHeader) {
		t.Fatalf("request id not logged: %v", entry)
	}
	if entry["error"] == nil {
		t.Fatalf("handler error not logged: %v", entry)
	}
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	r := gin.New()
	r.POST("/users", RateLimit(nil, 1, time.Minute, KeyByIP()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i, w.Code)
		}
		if w.Header().Get("X-RateLimit-Limit") != "" {
			t.Fatal("limit headers set with limiter disabled")
		}
	}
}

func TestKeyFuncs(t *testing.T) {
	r := gin.New()
	var ipKey, pathKey string
	r.GET("/users/:id", func(c *gin.Context) {
		ipKey = KeyByIP()(c)
		pathKey = KeyByIPAndPath()(c)
	})
	req := httptest.NewRequest(http.MethodGet, "/users/9", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	r.ServeHTTP(httptest.NewRecorder(), req)

	if ipKey != "rl:ip:10.0.0.1" {
		t.Fatalf("unexpected ip key %q", ipKey)
	}
	if pathKey != "rl:path:/users/:id:ip:10.0.0.1" {
		t.Fatalf("unexpected path key %q", pathKey)
	}
}
