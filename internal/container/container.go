package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/users-api/config"
	"github.com/oksasatya/users-api/internal/infrastructure/postgres"
)

// Container carries the process-wide components built in main. It is passed
// explicitly to the router; Redis is nil when rate limiting is disabled.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Pool   *postgres.Pool
	Redis  *redis.Client
}

func New(cfg *config.Config, logger *logrus.Logger, pool *postgres.Pool, rdb *redis.Client) *Container {
	return &Container{Config: cfg, Logger: logger, Pool: pool, Redis: rdb}
}
