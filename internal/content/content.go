// Package content loads every static definition the actor engine needs and
// assembles the registries and collaborators actors are built from.
package content

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/actorcore/internal/config"
	"github.com/cory-johannsen/actorcore/internal/game/actor"
	"github.com/cory-johannsen/actorcore/internal/game/dice"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/skill"
	"github.com/cory-johannsen/actorcore/internal/game/status"
	"github.com/cory-johannsen/actorcore/internal/scripting"
)

// Library is the loaded content: item and skill registries, character and
// enemy definitions, and the optional status effect scripts.
type Library struct {
	Items  *inventory.Registry
	Skills *skill.Registry

	characters map[uint32]*actor.CharacterDef
	enemies    map[uint32]*actor.EnemyDef
	scripts    *scripting.StatusScripts
	logger     *zap.Logger
}

// Load reads every configured content directory concurrently and registers the
// results. Empty directory settings are skipped.
//
// Precondition: cfg directories, when set, are readable.
// Postcondition: returns an error when any file fails to parse or validate, or
// when two definitions share an id.
func Load(ctx context.Context, cfg config.ContentConfig, logger *zap.Logger) (*Library, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var (
		weapons    []*inventory.WeaponDef
		armors     []*inventory.ArmorDef
		items      []*inventory.ItemDef
		skills     []*skill.Def
		characters []*actor.CharacterDef
		enemies    []*actor.EnemyDef
		scripts    *scripting.StatusScripts
	)

	g, gctx := errgroup.WithContext(ctx)
	load := func(dir string, fn func(string) error) {
		if dir == "" {
			return
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(dir)
		})
	}
	load(cfg.WeaponsDir, func(dir string) (err error) { weapons, err = inventory.LoadWeapons(dir); return })
	load(cfg.ArmorDir, func(dir string) (err error) { armors, err = inventory.LoadArmors(dir); return })
	load(cfg.ItemsDir, func(dir string) (err error) { items, err = inventory.LoadItems(dir); return })
	load(cfg.SkillsDir, func(dir string) (err error) { skills, err = skill.LoadSkills(dir); return })
	load(cfg.CharactersDir, func(dir string) (err error) { characters, err = actor.LoadCharacterDefs(dir); return })
	load(cfg.EnemiesDir, func(dir string) (err error) { enemies, err = actor.LoadEnemyDefs(dir); return })
	load(cfg.StatusScript, func(path string) (err error) {
		scripts, err = scripting.LoadStatusScripts(path, 0, logger.Named("status"))
		return
	})
	if err := g.Wait(); err != nil {
		if scripts != nil {
			scripts.Close()
		}
		return nil, fmt.Errorf("content: %w", err)
	}

	lib := &Library{
		Items:      inventory.NewRegistry(),
		Skills:     skill.NewRegistry(),
		characters: make(map[uint32]*actor.CharacterDef, len(characters)),
		enemies:    make(map[uint32]*actor.EnemyDef, len(enemies)),
		scripts:    scripts,
		logger:     logger,
	}
	if err := lib.register(weapons, armors, items, skills, characters, enemies); err != nil {
		lib.Close()
		return nil, fmt.Errorf("content: %w", err)
	}

	w, a, i := lib.Items.Counts()
	logger.Info("content loaded",
		zap.Int("weapons", w),
		zap.Int("armors", a),
		zap.Int("items", i),
		zap.Int("skills", lib.Skills.Len()),
		zap.Int("characters", len(lib.characters)),
		zap.Int("enemies", len(lib.enemies)),
		zap.Bool("status_scripts", scripts != nil),
	)
	return lib, nil
}

func (l *Library) register(
	weapons []*inventory.WeaponDef,
	armors []*inventory.ArmorDef,
	items []*inventory.ItemDef,
	skills []*skill.Def,
	characters []*actor.CharacterDef,
	enemies []*actor.EnemyDef,
) error {
	for _, w := range weapons {
		if err := l.Items.RegisterWeapon(w); err != nil {
			return err
		}
	}
	for _, a := range armors {
		if err := l.Items.RegisterArmor(a); err != nil {
			return err
		}
	}
	for _, it := range items {
		if err := l.Items.RegisterItem(it); err != nil {
			return err
		}
	}
	for _, s := range skills {
		if err := l.Skills.Register(s); err != nil {
			return err
		}
	}
	for _, c := range characters {
		if _, dup := l.characters[c.ID]; dup {
			return fmt.Errorf("character ID %d already registered", c.ID)
		}
		l.characters[c.ID] = c
	}
	for _, e := range enemies {
		if _, dup := l.enemies[e.ID]; dup {
			return fmt.Errorf("enemy ID %d already registered", e.ID)
		}
		l.enemies[e.ID] = e
	}
	return nil
}

// Character returns the character definition for id.
func (l *Library) Character(id uint32) (*actor.CharacterDef, bool) {
	d, ok := l.characters[id]
	return d, ok
}

// Enemy returns the enemy definition for id.
func (l *Library) Enemy(id uint32) (*actor.EnemyDef, bool) {
	d, ok := l.enemies[id]
	return d, ok
}

// CharacterIDs returns every loaded character id in ascending order.
func (l *Library) CharacterIDs() []uint32 { return sortedKeys(l.characters) }

// EnemyIDs returns every loaded enemy id in ascending order.
func (l *Library) EnemyIDs() []uint32 { return sortedKeys(l.enemies) }

// StatusHandlers returns the scripted status handlers, or nil when no script
// was configured.
func (l *Library) StatusHandlers() status.Handlers {
	if l.scripts == nil {
		return nil
	}
	return l.scripts
}

// Deps wires the library's registries into actor collaborators.
//
// Precondition: random may be nil, selecting the cryptographic source.
func (l *Library) Deps(logger *zap.Logger, random dice.Source) actor.Deps {
	return actor.Deps{
		Logger: logger,
		Skills: l.Skills,
		Items:  l.Items,
		Status: l.StatusHandlers(),
		Random: random,
	}
}

// NewCharacter builds character id from its initial template.
func (l *Library) NewCharacter(id uint32, deps actor.Deps) (*actor.Character, error) {
	def, ok := l.Character(id)
	if !ok {
		return nil, fmt.Errorf("content: %w: %d", actor.ErrUnknownCharacter, id)
	}
	return actor.NewCharacter(def, deps)
}

// NewEnemy builds enemy id.
func (l *Library) NewEnemy(id uint32, deps actor.Deps) (*actor.Enemy, error) {
	def, ok := l.Enemy(id)
	if !ok {
		return nil, fmt.Errorf("content: unknown enemy %d", id)
	}
	return actor.NewEnemy(def, deps)
}

// Close releases the status script VM, if any.
func (l *Library) Close() {
	if l.scripts != nil {
		l.scripts.Close()
		l.scripts = nil
	}
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	out := make([]uint32, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
