package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

const pingTimeout = 5 * time.Second

// ErrAcquireTimeout is returned by Borrow when no connection frees up within the acquire timeout.
var ErrAcquireTimeout = errors.New("timed out waiting for a database connection")

// Conn is a borrowed connection. Callers must Release it exactly once when done;
// extra calls are no-ops.
type Conn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Release()
}

// Source hands out raw connections. *pgxpool.Pool is the production source.
type Source interface {
	Acquire(ctx context.Context) (Conn, error)
	Close()
}

type PoolConfig struct {
	DSN            string
	MaxConns       int32
	AcquireTimeout time.Duration
	MaxConnLife    time.Duration
	TraceQueries   bool
}

// Pool bounds concurrent borrows to MaxConns. Waiters queue in FIFO order and
// give up after AcquireTimeout.
type Pool struct {
	src            Source
	sem            *semaphore.Weighted
	maxConns       int64
	acquireTimeout time.Duration
	inUse          atomic.Int64
	logger         *logrus.Logger
}

func NewPool(ctx context.Context, cfg PoolConfig, logger *logrus.Logger) (*Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pcfg.MaxConns = cfg.MaxConns
	pcfg.MinConns = 0
	if cfg.MaxConnLife > 0 {
		pcfg.MaxConnLifetime = cfg.MaxConnLife
	}
	if cfg.TraceQueries && logger != nil {
		pcfg.ConnConfig.Tracer = NewQueryTracer(logger)
	}
	pgxPool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pgxPool.Ping(pingCtx); err != nil {
		pgxPool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	p := newPool(pgxSource{pool: pgxPool}, int64(cfg.MaxConns), cfg.AcquireTimeout)
	p.logger = logger
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"max_conns":       cfg.MaxConns,
			"acquire_timeout": cfg.AcquireTimeout.String(),
		}).Info("database connection pool created")
	}
	return p, nil
}

func newPool(src Source, maxConns int64, acquireTimeout time.Duration) *Pool {
	return &Pool{
		src:            src,
		sem:            semaphore.NewWeighted(maxConns),
		maxConns:       maxConns,
		acquireTimeout: acquireTimeout,
	}
}

// Borrow blocks until a connection is available, ctx is done, or the acquire
// timeout elapses. The timeout case yields ErrAcquireTimeout.
func (p *Pool) Borrow(ctx context.Context) (Conn, error) {
	actx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	if err := p.sem.Acquire(actx, 1); err != nil {
		return nil, p.acquireErr(ctx, err)
	}
	c, err := p.src.Acquire(actx)
	if err != nil {
		p.sem.Release(1)
		return nil, p.acquireErr(ctx, err)
	}
	p.inUse.Add(1)
	return &borrowed{Conn: c, pool: p}, nil
}

func (p *Pool) acquireErr(parent context.Context, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		if p.logger != nil {
			p.logger.WithFields(logrus.Fields{
				"in_use":          p.inUse.Load(),
				"max_conns":       p.maxConns,
				"acquire_timeout": p.acquireTimeout.String(),
			}).Warn("connection acquire timed out")
		}
		return ErrAcquireTimeout
	}
	return fmt.Errorf("acquire connection: %w", err)
}

// Ping borrows a connection and runs SELECT 1 on it.
func (p *Pool) Ping(ctx context.Context) error {
	c, err := p.Borrow(ctx)
	if err != nil {
		return err
	}
	defer c.Release()
	var one int
	return c.QueryRow(ctx, "SELECT 1").Scan(&one)
}

// InUse returns the number of currently borrowed connections.
func (p *Pool) InUse() int64 { return p.inUse.Load() }

// MaxConns returns the borrow limit.
func (p *Pool) MaxConns() int64 { return p.maxConns }

func (p *Pool) Close() {
	if p.logger != nil {
		p.logger.Info("closing database connection pool")
	}
	p.src.Close()
}

type borrowed struct {
	Conn
	pool *Pool
	once sync.Once
}

func (b *borrowed) Release() {
	b.once.Do(func() {
		b.Conn.Release()
		b.pool.inUse.Add(-1)
		b.pool.sem.Release(1)
	})
}

type pgxSource struct {
	pool *pgxpool.Pool
}

func (s pgxSource) Acquire(ctx context.Context) (Conn, error) {
	c, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s pgxSource) Close() { s.pool.Close() }
