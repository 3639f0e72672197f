package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/users-api/pkg/response"
)

const healthPingTimeout = 5 * time.Second

// Pinger is satisfied by the connection pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB     Pinger
	Logger *logrus.Logger
}

func NewHealthHandler(db Pinger, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{DB: db, Logger: logger}
}

// Check always answers 200; the database field reports connectivity.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	start := time.Now()
	dbStatus := "connected"
	if err := h.DB.Ping(ctx); err != nil {
		dbStatus = "disconnected"
		if h.Logger != nil {
			h.Logger.WithError(err).
				WithField("response_time", time.Since(start).String()).
				Warn("database health check failed")
		}
	}

	response.Success(c, http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
