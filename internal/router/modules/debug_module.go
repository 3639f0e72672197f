package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

// PoolStats is satisfied by the connection pool.
type PoolStats interface {
	InUse() int64
	MaxConns() int64
}

type DebugModule struct {
	Pool PoolStats
}

func NewDebugModule(pool PoolStats) *DebugModule { return &DebugModule{Pool: pool} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar panics on duplicate names
	if expvar.Get("db_pool_in_use") == nil {
		expvar.Publish("db_pool_in_use", expvar.Func(func() any { return m.Pool.InUse() }))
		expvar.Publish("db_pool_max_conns", expvar.Func(func() any { return m.Pool.MaxConns() }))
	}
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
