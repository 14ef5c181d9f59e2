package actor

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/status"
)

// AttackPointDef is the static description of one attack point.
type AttackPointDef struct {
	Name               string          `yaml:"name"`
	X                  int32           `yaml:"x"`
	Y                  int32           `yaml:"y"`
	FortitudeModifier  float32         `yaml:"fortitude_modifier"`
	ProtectionModifier float32         `yaml:"protection_modifier"`
	EvadeModifier      float32         `yaml:"evade_modifier"`
	StatusEffects      []status.Chance `yaml:"status_effects"`
}

// AttackPoint is one vulnerable location on an actor. It caches its total
// defense and evasion, derived from the owner's stats and the armor covering it.
type AttackPoint struct {
	owner  *Actor
	def    AttackPointDef
	logger *zap.Logger

	totalPhysicalDefense uint32
	totalMagicalDefense  [attribute.ElementTotal]uint32
	totalEvadeRating     float32
}

// NewAttackPoint creates an attack point owned by owner.
//
// Precondition: owner may be nil; calculations on an unowned point are no-ops.
// Postcondition: all cached totals are zero until the first Calculate call.
func NewAttackPoint(owner *Actor, def AttackPointDef, logger *zap.Logger) *AttackPoint {
	if logger == nil {
		logger = zap.NewNop()
	}
	def.StatusEffects = append([]status.Chance(nil), def.StatusEffects...)
	return &AttackPoint{owner: owner, def: def, logger: logger}
}

// Name returns the attack point's display name.
func (p *AttackPoint) Name() string { return p.def.Name }

// Position returns the display offsets.
func (p *AttackPoint) Position() (x, y int32) { return p.def.X, p.def.Y }

// FortitudeModifier returns the fraction applied to the owner's fortitude.
func (p *AttackPoint) FortitudeModifier() float32 { return p.def.FortitudeModifier }

// ProtectionModifier returns the fraction applied to the owner's protection.
func (p *AttackPoint) ProtectionModifier() float32 { return p.def.ProtectionModifier }

// EvadeModifier returns the fraction applied to the owner's evade.
func (p *AttackPoint) EvadeModifier() float32 { return p.def.EvadeModifier }

// StatusEffectChances returns the statuses a hit on this point may inflict.
func (p *AttackPoint) StatusEffectChances() []status.Chance { return p.def.StatusEffects }

// TotalPhysicalDefense returns the cached physical defense.
func (p *AttackPoint) TotalPhysicalDefense() uint32 { return p.totalPhysicalDefense }

// TotalMagicalDefense returns the cached magical defense against e.
// Out-of-range elements read Neutral.
func (p *AttackPoint) TotalMagicalDefense(e attribute.Element) uint32 {
	return p.totalMagicalDefense[e.OrNeutral()]
}

// TotalEvadeRating returns the cached evasion rating.
func (p *AttackPoint) TotalEvadeRating() float32 { return p.totalEvadeRating }

// CalculateTotalDefense recomputes physical and per-element magical defense
// from the owner's fortitude and protection and the given armor (nil for none).
//
// Postcondition: TotalPhysicalDefense() == 0 when FortitudeModifier() <= -1,
// regardless of armor.
func (p *AttackPoint) CalculateTotalDefense(armor *inventory.Armor) {
	if p.owner == nil {
		p.logger.Warn("attack point has no owning actor", zap.String("attack_point", p.def.Name))
		return
	}

	if p.def.FortitudeModifier <= -1.0 {
		p.totalPhysicalDefense = 0
	} else {
		fortitude := p.owner.stats[attribute.Fortitude].Value()
		physical := scaledStat(fortitude, p.def.FortitudeModifier)
		if armor != nil {
			physical = saturatingAdd(physical, armor.PhysicalDefense())
		}
		p.totalPhysicalDefense = physical
	}

	var magicalBase uint32
	if p.def.ProtectionModifier > -1.0 {
		protection := p.owner.stats[attribute.Protection].Value()
		magicalBase = scaledStat(protection, p.def.ProtectionModifier)
	}
	if armor != nil {
		magicalBase = saturatingAdd(magicalBase, armor.MagicalDefense())
	}
	for e := attribute.Element(0); e < attribute.ElementTotal; e++ {
		p.totalMagicalDefense[e] = toUint32(float32(magicalBase) * p.owner.elemental[e])
	}
}

// CalculateTotalEvade recomputes the evasion rating from the owner's evade.
//
// Postcondition: TotalEvadeRating() == 0 when EvadeModifier() <= -1.
func (p *AttackPoint) CalculateTotalEvade() {
	if p.owner == nil {
		p.logger.Warn("attack point has no owning actor", zap.String("attack_point", p.def.Name))
		return
	}
	if p.def.EvadeModifier <= -1.0 {
		p.totalEvadeRating = 0
		return
	}
	evade := p.owner.stats[attribute.Evade].Value()
	p.totalEvadeRating = evade + evade*p.def.EvadeModifier
}

// clone copies p onto a new owner.
func (p *AttackPoint) clone(owner *Actor) *AttackPoint {
	c := *p
	c.owner = owner
	c.def.StatusEffects = append([]status.Chance(nil), p.def.StatusEffects...)
	return &c
}

// scaledStat returns value + trunc(value*modifier), floored at zero.
func scaledStat(value, modifier float32) uint32 {
	base := toUint32(value)
	bonus := int64(value * modifier)
	total := int64(base) + bonus
	if total < 0 {
		return 0
	}
	if total > maxUint32 {
		return maxUint32
	}
	return uint32(total)
}
