package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/config"
	"github.com/cory-johannsen/actorcore/internal/content"
	"github.com/cory-johannsen/actorcore/internal/game/actor"
	"github.com/cory-johannsen/actorcore/internal/game/dice"
	"github.com/cory-johannsen/actorcore/internal/observability"
	"github.com/cory-johannsen/actorcore/internal/storage/postgres"
	"github.com/cory-johannsen/actorcore/internal/storage/redis"
)

// app holds everything a command needs once configuration has been loaded.
type app struct {
	configPath string
	out        io.Writer

	cfg    config.Config
	logger *zap.Logger
	lib    *content.Library
	random dice.Source
	pool   *postgres.Pool
	cache  *redis.SheetCache
	closer []io.Closer
}

// setup loads configuration, builds the logger and random source and reads all content.
//
// Postcondition: on success close must be called.
func (a *app) setup(ctx context.Context) error {
	start := time.Now()
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	a.logger = logger
	a.random = newRandom(cfg.Random, observability.Component(logger, "dice"))

	lib, err := content.Load(ctx, cfg.Content, observability.Component(logger, "content"))
	if err != nil {
		return err
	}
	a.lib = lib
	a.logger.Debug("actorctl ready", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (a *app) close() {
	for _, c := range a.closer {
		_ = c.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.lib != nil {
		a.lib.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newRandom returns the seeded source when a seed is configured, otherwise the
// cryptographic source, optionally logging every draw.
func newRandom(cfg config.RandomConfig, logger *zap.Logger) dice.Source {
	var src dice.Source
	if cfg.Seed != 0 {
		src = dice.NewSeededSource(cfg.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	if cfg.LogDraws {
		src = dice.NewLoggedSource(src, logger)
	}
	return src
}

func (a *app) deps() actor.Deps {
	return a.lib.Deps(observability.Component(a.logger, "actor"), a.random)
}

func (a *app) roster(ctx context.Context) (*postgres.RosterRepository, error) {
	if a.pool == nil {
		pool, err := postgres.NewPool(ctx, a.cfg.Database, observability.Component(a.logger, "postgres"))
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		a.pool = pool
	}
	return a.pool.Roster(), nil
}

func (a *app) sheetCache() (*redis.SheetCache, error) {
	if a.cache == nil {
		client, err := redis.NewClient(a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closer = append(a.closer, client)
		a.cache = redis.NewSheetCache(client, a.cfg.Redis.SheetTTL, observability.Component(a.logger, "cache"))
	}
	return a.cache, nil
}

// character builds id from its template, or restores it from the roster.
func (a *app) character(ctx context.Context, id uint32, fromRoster bool) (*actor.Character, error) {
	if !fromRoster {
		return a.lib.NewCharacter(id, a.deps())
	}
	def, ok := a.lib.Character(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", actor.ErrUnknownCharacter, id)
	}
	repo, err := a.roster(ctx)
	if err != nil {
		return nil, err
	}
	st, err := repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return actor.RestoreCharacter(def, st, a.deps())
}

func (a *app) save(ctx context.Context, c *actor.Character) error {
	repo, err := a.roster(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, c.State())
}

func (a *app) publish(ctx context.Context, s actor.Sheet) error {
	cache, err := a.sheetCache()
	if err != nil {
		return err
	}
	return cache.Put(ctx, s)
}

func (a *app) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func parseID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint32(id), nil
}
