package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "users-api", "production")

	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", logger.GetLevel())
	}
	line := strings.SplitN(buf.String(), "\n", 2)[0]
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", line, err)
	}
	if entry["app"] != "users-api" || entry["env"] != "production" {
		t.Fatalf("unexpected fields: %v", entry)
	}
}

func TestNewLogger_DevelopmentIsVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "users-api", "development")

	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "logger initialized") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestNewRedisClient_EmptyAddrDisables(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), "", "", 0)
	if err != nil || rdb != nil {
		t.Fatalf("expected nil client and nil error, got %v, %v", rdb, err)
	}
}
