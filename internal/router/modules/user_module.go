package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/users-api/internal/interface/http"
	"github.com/oksasatya/users-api/internal/interface/middleware"
)

// UserModule wires POST /users and GET /users/:id.
// Writes are rate limited per IP when Redis is configured.
type UserModule struct {
	Handler      *handlers.UserHandler
	Redis        *redis.Client
	WritesPerMin int
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, writesPerMin int) *UserModule {
	return &UserModule{Handler: h, Redis: rdb, WritesPerMin: writesPerMin}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(m.Redis, m.WritesPerMin, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/users", createLimiter, m.Handler.Create)
	rg.GET("/users/:id", m.Handler.Get)
}
