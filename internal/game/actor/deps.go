package actor

import (
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/dice"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/skill"
	"github.com/cory-johannsen/actorcore/internal/game/status"
)

// ErrUnknownCharacter is returned when a character id is not present in a party or roster.
var ErrUnknownCharacter = errors.New("actor: unknown character")

// Deps are the collaborators injected into every actor.
type Deps struct {
	Logger *zap.Logger
	Skills skill.Source
	Items  inventory.Source
	// Status resolves passive status-effect handlers for characters.
	Status status.Handlers
	// Growth supplies level-up deltas; nil means the character definition's own table.
	Growth GrowthSource
	// Random drives enemy stat randomization and drop rolls.
	Random dice.Source
}

// withDefaults fills every nil collaborator with an inert default.
func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Skills == nil {
		d.Skills = skill.NewRegistry()
	}
	if d.Items == nil {
		d.Items = inventory.NewRegistry()
	}
	if d.Status == nil {
		d.Status = status.Table{}
	}
	if d.Random == nil {
		d.Random = dice.NewCryptoSource()
	}
	return d
}

// Combatant is the capability set battle and menu code use without caring
// whether the actor is a character or an enemy.
type Combatant interface {
	ID() uint32
	Name() string
	HitPoints() uint32
	MaxHitPoints() uint32
	SkillPoints() uint32
	MaxSkillPoints() uint32
	IsAlive() bool
	Stat(s attribute.Stat) attribute.StatAttribute
	ElementalModifier(e attribute.Element) float32
	TotalPhysicalAttack() uint32
	TotalMagicalAttack(e attribute.Element) uint32
	AttackPoints() []*AttackPoint
	Skills() []*skill.Skill
	AddHitPoints(amount uint32)
	SubtractHitPoints(amount uint32)
	AddSkillPoints(amount uint32)
	SubtractSkillPoints(amount uint32)
	Sheet() Sheet
}

var (
	_ Combatant     = (*Character)(nil)
	_ Combatant     = (*Enemy)(nil)
	_ status.Target = (*Character)(nil)
)
