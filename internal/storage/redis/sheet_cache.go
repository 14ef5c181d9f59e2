// Package redis caches derived actor sheets in Redis so readers that only
// display totals do not need to rebuild actors.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/config"
	"github.com/cory-johannsen/actorcore/internal/game/actor"
)

// Key pattern: sheet:{kind}:{id}
const sheetKeyPrefix = "sheet:"

// DefaultSheetTTL applies when no TTL is configured.
const DefaultSheetTTL = 10 * time.Minute

// ErrSheetNotFound is returned when no cached sheet exists for a key.
var ErrSheetNotFound = errors.New("sheet not found")

// NewClient creates a go-redis client from cfg. Redis connects lazily; no
// round trip happens here.
//
// Precondition: cfg.Addr must be non-empty.
func NewClient(cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: addr is required")
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}

// SheetCache stores actor.Sheet snapshots as JSON with a TTL.
type SheetCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewSheetCache creates a SheetCache.
//
// Precondition: client must be non-nil; ttl <= 0 selects DefaultSheetTTL.
func NewSheetCache(client goredis.UniversalClient, ttl time.Duration, logger *zap.Logger) *SheetCache {
	if ttl <= 0 {
		ttl = DefaultSheetTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetCache{client: client, ttl: ttl, logger: logger}
}

func sheetKey(kind string, id uint32) string {
	return fmt.Sprintf("%s%s:%d", sheetKeyPrefix, kind, id)
}

// Put stores s, replacing any previous sheet for the same actor.
func (c *SheetCache) Put(ctx context.Context, s actor.Sheet) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling sheet %s:%d: %w", s.Kind, s.ID, err)
	}
	if err := c.client.Set(ctx, sheetKey(s.Kind, s.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("storing sheet %s:%d: %w", s.Kind, s.ID, err)
	}
	c.logger.Debug("sheet cached", zap.String("kind", s.Kind), zap.Uint32("actor_id", s.ID))
	return nil
}

// Get returns the cached sheet for the actor.
//
// Postcondition: returns ErrSheetNotFound when the key is absent or expired.
func (c *SheetCache) Get(ctx context.Context, kind string, id uint32) (actor.Sheet, error) {
	data, err := c.client.Get(ctx, sheetKey(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return actor.Sheet{}, ErrSheetNotFound
		}
		return actor.Sheet{}, fmt.Errorf("reading sheet %s:%d: %w", kind, id, err)
	}
	var s actor.Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return actor.Sheet{}, fmt.Errorf("unmarshaling sheet %s:%d: %w", kind, id, err)
	}
	return s, nil
}

// Delete evicts the cached sheet. Deleting an absent sheet is not an error.
func (c *SheetCache) Delete(ctx context.Context, kind string, id uint32) error {
	if err := c.client.Del(ctx, sheetKey(kind, id)).Err(); err != nil {
		return fmt.Errorf("deleting sheet %s:%d: %w", kind, id, err)
	}
	return nil
}

// PutParty stores the sheet of every party member in one pipelined transaction.
func (c *SheetCache) PutParty(ctx context.Context, p *actor.Party) error {
	members := p.Characters()
	payloads := make(map[string][]byte, len(members))
	for _, m := range members {
		s := m.Sheet()
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshaling sheet %s:%d: %w", s.Kind, s.ID, err)
		}
		payloads[sheetKey(s.Kind, s.ID)] = data
	}
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for key, data := range payloads {
			pipe.Set(ctx, key, data, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storing party sheets: %w", err)
	}
	c.logger.Debug("party sheets cached", zap.Int("members", len(members)))
	return nil
}
