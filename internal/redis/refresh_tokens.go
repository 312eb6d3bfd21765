package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daygrid/calendar-backend/internal/config"
	"github.com/daygrid/calendar-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix     = "session:"
	userSessionsPrefix   = "user_sessions:"
	userSessionsScanSize = 100
)

// RefreshTokenRepository keeps refresh-token sessions in Redis: one expiring
// key per session plus a per-user set so every session of a user can be
// revoked at once.
type RefreshTokenRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewRefreshTokenRepository(pool *redis.Pool, logger *zap.SugaredLogger) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *RefreshTokenRepository) Add(ctx context.Context, session string, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	created, err := redis.Int(conn.Do("SETNX", sessionKeyPrefix+session, id))
	if err != nil {
		return fmt.Errorf("SETNX: %w", err)
	}
	if created == 0 {
		return model.ErrAlreadyExists
	}

	ttl := int64(config.SessionTTl() / time.Second)
	if _, err := conn.Do("EXPIRE", sessionKeyPrefix+session, ttl); err != nil {
		return fmt.Errorf("EXPIRE: %w", err)
	}

	if _, err := conn.Do("SADD", userSessionsPrefix+fmt.Sprint(id), session); err != nil {
		return fmt.Errorf("SADD: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) Get(ctx context.Context, session string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	id, err := redis.Int64(conn.Do("GET", sessionKeyPrefix+session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return 0, model.ErrNoRecord
		}
		return 0, fmt.Errorf("GET: %w", err)
	}

	return id, nil
}

// Refresh rotates a session token: the new token takes over the remaining
// lifetime semantics of a fresh session, the old one is dropped.
func (r *RefreshTokenRepository) Refresh(ctx context.Context, old, new string) error {
	id, err := r.Get(ctx, old)
	if err != nil {
		return err
	}

	if err := r.Add(ctx, new, id); err != nil {
		return err
	}

	return r.Delete(ctx, old)
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	id, err := redis.Int64(conn.Do("GET", sessionKeyPrefix+session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return model.ErrNoRecord
		}
		return fmt.Errorf("GET: %w", err)
	}

	if _, err := conn.Do("DEL", sessionKeyPrefix+session); err != nil {
		return fmt.Errorf("DEL: %w", err)
	}

	if _, err := conn.Do("SREM", userSessionsPrefix+fmt.Sprint(id), session); err != nil {
		return fmt.Errorf("SREM: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) DeleteByUserID(ctx context.Context, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	setKey := userSessionsPrefix + fmt.Sprint(id)

	sessions, err := redis.Strings(conn.Do("SMEMBERS", setKey))
	if err != nil {
		return fmt.Errorf("SMEMBERS: %w", err)
	}

	for _, s := range sessions {
		if _, err := conn.Do("DEL", sessionKeyPrefix+s); err != nil {
			return fmt.Errorf("DEL: %w", err)
		}
	}

	if _, err := conn.Do("DEL", setKey); err != nil {
		return fmt.Errorf("DEL: %w", err)
	}

	return nil
}

// DeleteExpired prunes user-set members whose session key has already
// expired. The session keys themselves expire on their own.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	cursor := 0
	for {
		values, err := redis.Values(conn.Do("SCAN", cursor, "MATCH", userSessionsPrefix+"*", "COUNT", userSessionsScanSize))
		if err != nil {
			return fmt.Errorf("SCAN: %w", err)
		}

		var keys []string
		if _, err := redis.Scan(values, &cursor, &keys); err != nil {
			return fmt.Errorf("parse SCAN reply: %w", err)
		}

		for _, key := range keys {
			sessions, err := redis.Strings(conn.Do("SMEMBERS", key))
			if err != nil {
				return fmt.Errorf("SMEMBERS: %w", err)
			}

			for _, s := range sessions {
				exists, err := redis.Int(conn.Do("EXISTS", sessionKeyPrefix+s))
				if err != nil {
					return fmt.Errorf("EXISTS: %w", err)
				}
				if exists == 0 {
					if _, err := conn.Do("SREM", key, s); err != nil {
						return fmt.Errorf("SREM: %w", err)
					}
				}
			}
		}

		if cursor == 0 {
			return nil
		}
	}
}

// StartCleanup periodically prunes expired sessions until ctx is cancelled.
// Meant to run in its own goroutine.
func (r *RefreshTokenRepository) StartCleanup(ctx context.Context) {
	ticker := time.NewTicker(config.SessionCleanupPeriod())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.DeleteExpired(ctx); err != nil {
				r.logger.Errorw("session cleanup failed", "err", err)
			}
		}
	}
}
