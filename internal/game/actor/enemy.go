package actor

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/dice"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/skill"
)

// Enemy is a non-playable actor with a candidate skill set and a drop table.
type Enemy struct {
	Actor

	skillSet            []uint32
	drops               []Drop
	noStatRandomization bool
	drunesDropped       uint32

	items  inventory.Source
	random dice.Source
}

// NewEnemy builds an enemy from its definition. Skills are not materialized
// and stats are not randomized until Initialize.
//
// Postcondition: cached totals reflect the definition's base stats.
func NewEnemy(def *EnemyDef, deps Deps) (*Enemy, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("actor: NewEnemy: %w", err)
	}
	deps = deps.withDefaults()
	e := &Enemy{
		Actor:               newActor(def.ID, def.Name, deps),
		skillSet:            append([]uint32(nil), def.Skills...),
		drops:               append([]Drop(nil), def.Drops...),
		noStatRandomization: def.NoStatRandomization,
		drunesDropped:       def.Drunes,
		items:               deps.Items,
		random:              deps.Random,
	}
	e.setElementalProfile(elementalProfile(def.ElementalModifiers))

	b := def.BaseStats
	e.maxHitPoints = b.HitPoints
	e.hitPoints = e.maxHitPoints
	e.maxSkillPoints = b.SkillPoints
	e.skillPoints = e.maxSkillPoints
	e.experiencePoints = b.ExperiencePoints
	e.stats[attribute.Strength].Base = float32(b.Strength)
	e.stats[attribute.Vigor].Base = float32(b.Vigor)
	e.stats[attribute.Fortitude].Base = float32(b.Fortitude)
	e.stats[attribute.Protection].Base = float32(b.Protection)
	e.stats[attribute.Agility].Base = float32(b.Agility)
	e.stats[attribute.Evade].Base = b.Evade

	e.attackPoints = make([]*AttackPoint, len(def.AttackPoints))
	for i, apd := range def.AttackPoints {
		e.attackPoints[i] = NewAttackPoint(&e.Actor, apd, e.logger)
	}
	e.recalculateAll()
	return e, nil
}

// DrunesDropped returns the money the enemy yields when defeated.
func (e *Enemy) DrunesDropped() uint32 { return e.drunesDropped }

// NoStatRandomization reports whether Initialize keeps the base stats as defined.
func (e *Enemy) NoStatRandomization() bool { return e.noStatRandomization }

// SkillSet returns the candidate skill ids materialized by Initialize.
func (e *Enemy) SkillSet() []uint32 { return append([]uint32(nil), e.skillSet...) }

// Drops returns the drop table.
func (e *Enemy) Drops() []Drop { return append([]Drop(nil), e.drops...) }

// AddSkill makes the skill usable. Unknown and already-known skills are rejected.
func (e *Enemy) AddSkill(id uint32) bool {
	if id != 0 && e.HasSkill(id) {
		e.logger.Warn("enemy already knows skill", zap.Uint32("skill_id", id))
		return false
	}
	def, ok := e.lookupSkill(id)
	if !ok {
		return false
	}
	e.appendSkill(skill.New(def))
	return true
}

// Initialize materializes the skill set and, unless randomization is
// disabled, redraws every base stat from a Gaussian with the defined value as
// mean and a tenth of it as standard deviation. Current hit and skill points
// are then set to their maxima.
//
// Precondition: has no effect, beyond a warning, once skills are populated.
func (e *Enemy) Initialize() {
	if len(e.skills) > 0 {
		e.logger.Warn("enemy already initialized")
		return
	}
	for _, id := range e.skillSet {
		e.AddSkill(id)
	}
	if len(e.skills) == 0 {
		e.logger.Warn("no skills were added for the enemy")
	}

	if !e.noStatRandomization {
		e.maxHitPoints = e.gaussian(e.maxHitPoints)
		e.maxSkillPoints = e.gaussian(e.maxSkillPoints)
		e.experiencePoints = e.gaussian(e.experiencePoints)
		for _, s := range []attribute.Stat{
			attribute.Strength, attribute.Vigor, attribute.Fortitude, attribute.Protection, attribute.Agility,
		} {
			e.stats[s].Base = float32(e.gaussianAround(float64(e.stats[s].Base)))
		}
		// Evade is scaled by ten so one decimal survives the integer draw.
		evade := float64(e.stats[attribute.Evade].Base) * 10
		e.stats[attribute.Evade].Base = float32(dice.Gaussian(e.random, evade, evade/10)) / 10
		e.drunesDropped = e.gaussian(e.drunesDropped)
	}

	e.hitPoints = e.maxHitPoints
	e.skillPoints = e.maxSkillPoints
	e.recalculateAll()
}

func (e *Enemy) gaussian(mean uint32) uint32 {
	return e.gaussianAround(float64(mean))
}

// gaussianAround draws around mean, which may be fractional, with a tenth of
// it as standard deviation.
func (e *Enemy) gaussianAround(mean float64) uint32 {
	v := dice.Gaussian(e.random, mean, mean/10)
	if v > maxUint32 {
		return maxUint32
	}
	return uint32(v)
}

// DetermineDroppedObjects rolls every drop table entry independently against
// its chance and returns fresh instances of the winners. Each call rolls anew.
func (e *Enemy) DetermineDroppedObjects() []inventory.Object {
	var out []inventory.Object
	for _, d := range e.drops {
		if !dice.Chance(e.random, float64(d.Chance)) {
			continue
		}
		obj, err := e.items.NewObject(d.Object, 1)
		if err != nil {
			e.logger.Warn("dropped object could not be created", zap.Uint32("object_id", d.Object), zap.Error(err))
			continue
		}
		out = append(out, obj)
	}
	return out
}

// Clone returns an independent deep copy of e.
func (e *Enemy) Clone() *Enemy {
	dst := &Enemy{}
	*dst = *e
	e.Actor.copyInto(&dst.Actor)
	dst.skillSet = append([]uint32(nil), e.skillSet...)
	dst.drops = append([]Drop(nil), e.drops...)
	return dst
}
