package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/users-api/internal/domain/entity"
)

// memSource is an in-memory stand-in for pgxpool backed by a users table.
type memSource struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]entity.User
	emails  map[string]int64
	failErr error // returned by every query when set

	acquireErr error
	active     atomic.Int64
	peak       atomic.Int64
}

func newMemSource() *memSource {
	return &memSource{rows: map[int64]entity.User{}, emails: map[string]int64{}}
}

func (s *memSource) Acquire(ctx context.Context) (Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	n := s.active.Add(1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	return &memConn{src: s}, nil
}

func (s *memSource) Close() {}

type memConn struct {
	src      *memSource
	released bool
}

func (c *memConn) Release() {
	if c.released {
		panic("connection released twice")
	}
	c.released = true
	c.src.active.Add(-1)
}

func (c *memConn) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s := c.src
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return errRow{s.failErr}
	}
	switch {
	case strings.Contains(sql, "SELECT 1"):
		return intRow(1)
	case strings.Contains(sql, "INSERT INTO users"):
		name, email := args[0].(string), args[1].(string)
		if _, dup := s.emails[email]; dup {
			return errRow{&pgconn.PgError{
				Code:           "23505",
				Message:        `duplicate key value violates unique constraint "users_email_key"`,
				ConstraintName: "users_email_key",
			}}
		}
		s.nextID++
		now := time.Now().UTC()
		u := entity.User{ID: s.nextID, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
		if age := args[2].(*int32); age != nil {
			v := *age
			u.Age = &v
		}
		s.rows[u.ID] = u
		s.emails[email] = u.ID
		return userRow(u)
	case strings.Contains(sql, "WHERE id = $1"):
		u, ok := s.rows[args[0].(int64)]
		if !ok {
			return errRow{pgx.ErrNoRows}
		}
		return userRow(u)
	}
	return errRow{fmt.Errorf("unexpected query: %s", sql)}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type intRow int

func (r intRow) Scan(dest ...any) error {
	*dest[0].(*int) = int(r)
	return nil
}

type userRow entity.User

func (r userRow) Scan(dest ...any) error {
	if len(dest) != 6 {
		return errors.New("expected 6 columns")
	}
	*dest[0].(*int64) = r.ID
	*dest[1].(*string) = r.Name
	*dest[2].(*string) = r.Email
	if r.Age != nil {
		v := *r.Age
		*dest[3].(**int32) = &v
	} else {
		*dest[3].(**int32) = nil
	}
	*dest[4].(*time.Time) = r.CreatedAt
	*dest[5].(*time.Time) = r.UpdatedAt
	return nil
}
