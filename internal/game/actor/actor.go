// Package actor models characters and enemies: their base statistics, attack
// points, equipment and the derived combat totals that are kept consistent
// with every mutation.
package actor

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/skill"
)

// loadout is the equipment view the attack and defense calculations consult.
// Enemies carry none.
type loadout interface {
	Weapon() *inventory.Weapon
	Armor(position int) *inventory.Armor
}

// Actor holds the state shared by characters and enemies.
//
// Every mutator recomputes the cached totals that depend on what it changed
// before returning.
type Actor struct {
	id   uint32
	name string

	experiencePoints uint32
	hitPoints        uint32
	maxHitPoints     uint32
	skillPoints      uint32
	maxSkillPoints   uint32

	stats [attribute.StatTotal]attribute.StatAttribute
	// elementalBase is the definition's profile; elemental is the live one.
	elementalBase attribute.ElementalProfile
	elemental     attribute.ElementalProfile

	attackPoints []*AttackPoint

	totalPhysicalAttack uint32
	totalMagicalAttack  [attribute.ElementTotal]uint32

	skills   []*skill.Skill
	skillIDs []uint32

	gear        loadout
	skillSource skill.Source
	logger      *zap.Logger
}

func newActor(id uint32, name string, deps Deps) Actor {
	return Actor{
		id:            id,
		name:          name,
		elementalBase: attribute.NewElementalProfile(),
		elemental:     attribute.NewElementalProfile(),
		skillSource:   deps.Skills,
		logger:        deps.Logger.With(zap.Uint32("actor_id", id)),
	}
}

// ID returns the actor's id.
func (a *Actor) ID() uint32 { return a.id }

// Name returns the actor's display name.
func (a *Actor) Name() string { return a.name }

// ActorID returns the actor's id; it satisfies status.Target.
func (a *Actor) ActorID() uint32 { return a.id }

// ActorName returns the actor's name; it satisfies status.Target.
func (a *Actor) ActorName() string { return a.name }

// ExperiencePoints returns accumulated experience.
func (a *Actor) ExperiencePoints() uint32 { return a.experiencePoints }

// HitPoints returns current hit points.
func (a *Actor) HitPoints() uint32 { return a.hitPoints }

// MaxHitPoints returns maximum hit points.
func (a *Actor) MaxHitPoints() uint32 { return a.maxHitPoints }

// SkillPoints returns current skill points.
func (a *Actor) SkillPoints() uint32 { return a.skillPoints }

// MaxSkillPoints returns maximum skill points.
func (a *Actor) MaxSkillPoints() uint32 { return a.maxSkillPoints }

// IsAlive reports whether the actor has any hit points left.
func (a *Actor) IsAlive() bool { return a.hitPoints > 0 }

// Stat returns the attribute for s. Invalid stats return the zero attribute.
func (a *Actor) Stat(s attribute.Stat) attribute.StatAttribute {
	if !s.Valid() {
		return attribute.StatAttribute{}
	}
	return a.stats[s]
}

// StatBase returns the base value of s.
func (a *Actor) StatBase(s attribute.Stat) float32 { return a.Stat(s).Base }

// StatModifier returns the modifier of s.
func (a *Actor) StatModifier(s attribute.Stat) float32 { return a.Stat(s).Modifier }

// SetStatModifier replaces the modifier of s and recomputes what depends on s.
func (a *Actor) SetStatModifier(s attribute.Stat, v float32) {
	if !s.Valid() {
		a.logger.Warn("ignoring modifier for unknown stat", zap.Int("stat", int(s)))
		return
	}
	a.stats[s].Modifier = v
	a.recomputeFor(s)
}

// ElementalBase returns the multiplier for e as defined, before any passive
// effect scaled it. Out-of-range elements read Neutral.
func (a *Actor) ElementalBase(e attribute.Element) float32 {
	return a.elementalBase.Modifier(e)
}

// ElementalModifier returns the multiplier for e. Out-of-range elements read Neutral.
func (a *Actor) ElementalModifier(e attribute.Element) float32 {
	return a.elemental.Modifier(e)
}

// setElementalProfile installs p as both the defined and the live profile.
func (a *Actor) setElementalProfile(p attribute.ElementalProfile) {
	a.elementalBase = p
	a.elemental = p
}

// SetElementalModifier replaces the multiplier for e and recomputes attack and defense.
func (a *Actor) SetElementalModifier(e attribute.Element, v float32) {
	if !e.Valid() {
		a.logger.Warn("ignoring modifier for unknown element", zap.Int("element", int(e)))
		return
	}
	a.elemental[e] = v
	a.calculateAttackRatings()
	a.calculateDefenseRatings()
}

// AddStrength raises base strength and recomputes attack ratings.
func (a *Actor) AddStrength(amount uint32) { a.addStat(attribute.Strength, float32(amount)) }

// SubtractStrength lowers base strength (floored at 0) and recomputes attack ratings.
func (a *Actor) SubtractStrength(amount uint32) { a.subtractStat(attribute.Strength, float32(amount)) }

// AddVigor raises base vigor and recomputes attack ratings.
func (a *Actor) AddVigor(amount uint32) { a.addStat(attribute.Vigor, float32(amount)) }

// SubtractVigor lowers base vigor (floored at 0) and recomputes attack ratings.
func (a *Actor) SubtractVigor(amount uint32) { a.subtractStat(attribute.Vigor, float32(amount)) }

// AddFortitude raises base fortitude and recomputes every attack point's defense.
func (a *Actor) AddFortitude(amount uint32) { a.addStat(attribute.Fortitude, float32(amount)) }

// SubtractFortitude lowers base fortitude (floored at 0) and recomputes defense.
func (a *Actor) SubtractFortitude(amount uint32) {
	a.subtractStat(attribute.Fortitude, float32(amount))
}

// AddProtection raises base protection and recomputes every attack point's defense.
func (a *Actor) AddProtection(amount uint32) { a.addStat(attribute.Protection, float32(amount)) }

// SubtractProtection lowers base protection (floored at 0) and recomputes defense.
func (a *Actor) SubtractProtection(amount uint32) {
	a.subtractStat(attribute.Protection, float32(amount))
}

// AddAgility raises base agility. Nothing is derived from agility.
func (a *Actor) AddAgility(amount uint32) { a.addStat(attribute.Agility, float32(amount)) }

// SubtractAgility lowers base agility, floored at 0.
func (a *Actor) SubtractAgility(amount uint32) { a.subtractStat(attribute.Agility, float32(amount)) }

// AddEvade raises base evade, capped at 1.0, and recomputes evasion ratings.
//
// Postcondition: StatBase(attribute.Evade) <= 1.0.
func (a *Actor) AddEvade(amount float32) {
	base := a.stats[attribute.Evade].Base + amount
	if base > 1.0 {
		base = 1.0
	}
	a.stats[attribute.Evade].Base = base
	a.calculateEvadeRatings()
}

// SubtractEvade lowers base evade, floored at 0, and recomputes evasion ratings.
func (a *Actor) SubtractEvade(amount float32) { a.subtractStat(attribute.Evade, amount) }

func (a *Actor) addStat(s attribute.Stat, amount float32) {
	a.stats[s].AddBase(amount)
	a.recomputeFor(s)
}

func (a *Actor) subtractStat(s attribute.Stat, amount float32) {
	a.stats[s].SubtractBase(amount)
	a.recomputeFor(s)
}

// recomputeFor refreshes the cached totals derived from s.
func (a *Actor) recomputeFor(s attribute.Stat) {
	switch s {
	case attribute.Strength, attribute.Vigor:
		a.calculateAttackRatings()
	case attribute.Fortitude, attribute.Protection:
		a.calculateDefenseRatings()
	case attribute.Evade:
		a.calculateEvadeRatings()
	}
}

// AddHitPoints raises current hit points, saturating and clamping to the maximum.
//
// Postcondition: HitPoints() <= MaxHitPoints().
func (a *Actor) AddHitPoints(amount uint32) {
	a.hitPoints = min(saturatingAdd(a.hitPoints, amount), a.maxHitPoints)
}

// SubtractHitPoints lowers current hit points, floored at 0.
func (a *Actor) SubtractHitPoints(amount uint32) {
	a.hitPoints = saturatingSub(a.hitPoints, amount)
}

// AddMaxHitPoints raises maximum hit points, saturating at MaxUint32.
func (a *Actor) AddMaxHitPoints(amount uint32) {
	a.maxHitPoints = saturatingAdd(a.maxHitPoints, amount)
}

// SubtractMaxHitPoints lowers maximum hit points. Removing more than the
// maximum zeroes both maximum and current hit points.
//
// Postcondition: HitPoints() <= MaxHitPoints().
func (a *Actor) SubtractMaxHitPoints(amount uint32) {
	if amount > a.maxHitPoints {
		a.logger.Warn("max hit points reduced to zero", zap.Uint32("amount", amount))
		a.maxHitPoints = 0
		a.hitPoints = 0
		return
	}
	a.maxHitPoints -= amount
	a.hitPoints = min(a.hitPoints, a.maxHitPoints)
}

// AddSkillPoints raises current skill points, saturating and clamping to the maximum.
//
// Postcondition: SkillPoints() <= MaxSkillPoints().
func (a *Actor) AddSkillPoints(amount uint32) {
	a.skillPoints = min(saturatingAdd(a.skillPoints, amount), a.maxSkillPoints)
}

// SubtractSkillPoints lowers current skill points, floored at 0.
func (a *Actor) SubtractSkillPoints(amount uint32) {
	a.skillPoints = saturatingSub(a.skillPoints, amount)
}

// AddMaxSkillPoints raises maximum skill points, saturating at MaxUint32.
func (a *Actor) AddMaxSkillPoints(amount uint32) {
	a.maxSkillPoints = saturatingAdd(a.maxSkillPoints, amount)
}

// SubtractMaxSkillPoints lowers maximum skill points. Removing more than the
// maximum zeroes both maximum and current skill points.
//
// Postcondition: SkillPoints() <= MaxSkillPoints().
func (a *Actor) SubtractMaxSkillPoints(amount uint32) {
	if amount > a.maxSkillPoints {
		a.logger.Warn("max skill points reduced to zero", zap.Uint32("amount", amount))
		a.maxSkillPoints = 0
		a.skillPoints = 0
		return
	}
	a.maxSkillPoints -= amount
	a.skillPoints = min(a.skillPoints, a.maxSkillPoints)
}

// TotalPhysicalAttack returns the cached physical attack rating.
func (a *Actor) TotalPhysicalAttack() uint32 { return a.totalPhysicalAttack }

// TotalMagicalAttack returns the cached magical attack rating for e.
// Out-of-range elements read Neutral.
func (a *Actor) TotalMagicalAttack(e attribute.Element) uint32 {
	return a.totalMagicalAttack[e.OrNeutral()]
}

// AttackPointCount returns the number of attack points.
func (a *Actor) AttackPointCount() int { return len(a.attackPoints) }

// AttackPoint returns the attack point at index, or nil with a warning when out of range.
func (a *Actor) AttackPoint(index int) *AttackPoint {
	if !a.validPoint(index) {
		return nil
	}
	return a.attackPoints[index]
}

// AttackPoints returns the attack points in order. The slice is a copy.
func (a *Actor) AttackPoints() []*AttackPoint {
	return append([]*AttackPoint(nil), a.attackPoints...)
}

// TotalPhysicalDefense returns the physical defense of the point at index, or 0 when out of range.
func (a *Actor) TotalPhysicalDefense(index int) uint32 {
	if !a.validPoint(index) {
		return 0
	}
	return a.attackPoints[index].TotalPhysicalDefense()
}

// TotalMagicalDefense returns the magical defense of the point at index against e,
// or 0 when index is out of range. Out-of-range elements read Neutral.
func (a *Actor) TotalMagicalDefense(index int, e attribute.Element) uint32 {
	if !a.validPoint(index) {
		return 0
	}
	return a.attackPoints[index].TotalMagicalDefense(e.OrNeutral())
}

// TotalEvadeRating returns the evasion of the point at index, or 0 when out of range.
func (a *Actor) TotalEvadeRating(index int) float32 {
	if !a.validPoint(index) {
		return 0
	}
	return a.attackPoints[index].TotalEvadeRating()
}

// AverageDefense returns the mean physical defense over all attack points, or 0 when there are none.
func (a *Actor) AverageDefense() uint32 {
	if len(a.attackPoints) == 0 {
		return 0
	}
	var sum uint64
	for _, p := range a.attackPoints {
		sum += uint64(p.TotalPhysicalDefense())
	}
	return uint32(sum / uint64(len(a.attackPoints)))
}

// AverageMagicalDefense returns the mean magical defense against e, or 0 when there are no attack points.
func (a *Actor) AverageMagicalDefense(e attribute.Element) uint32 {
	if len(a.attackPoints) == 0 {
		return 0
	}
	var sum uint64
	for _, p := range a.attackPoints {
		sum += uint64(p.TotalMagicalDefense(e))
	}
	return uint32(sum / uint64(len(a.attackPoints)))
}

// AverageEvadeRating returns the mean evasion over all attack points, or 0 when there are none.
func (a *Actor) AverageEvadeRating() float32 {
	if len(a.attackPoints) == 0 {
		return 0
	}
	var sum float32
	for _, p := range a.attackPoints {
		sum += p.TotalEvadeRating()
	}
	return sum / float32(len(a.attackPoints))
}

func (a *Actor) validPoint(index int) bool {
	if index < 0 || index >= len(a.attackPoints) {
		a.logger.Warn("attack point index out of range",
			zap.Int("index", index),
			zap.Int("attack_points", len(a.attackPoints)),
		)
		return false
	}
	return true
}

// HasSkill reports whether the actor currently knows the skill.
func (a *Actor) HasSkill(id uint32) bool {
	for _, known := range a.skillIDs {
		if known == id {
			return true
		}
	}
	return false
}

// Skills returns the currently usable skills in insertion order. The slice is a copy.
func (a *Actor) Skills() []*skill.Skill {
	return append([]*skill.Skill(nil), a.skills...)
}

// SkillIDs returns the ids of the currently usable skills, parallel to Skills.
func (a *Actor) SkillIDs() []uint32 {
	return append([]uint32(nil), a.skillIDs...)
}

func (a *Actor) appendSkill(s *skill.Skill) {
	a.skills = append(a.skills, s)
	a.skillIDs = append(a.skillIDs, s.ID())
}

func (a *Actor) clearSkills() {
	a.skills = nil
	a.skillIDs = nil
}

// lookupSkill resolves id against the skill source, warning when it cannot.
func (a *Actor) lookupSkill(id uint32) (*skill.Def, bool) {
	if id == 0 {
		a.logger.Warn("invalid skill id", zap.Uint32("skill_id", id))
		return nil, false
	}
	def, ok := a.skillSource.Skill(id)
	if !ok {
		a.logger.Warn("skill to add failed to load", zap.Uint32("skill_id", id))
		return nil, false
	}
	return def, true
}

// calculateAttackRatings derives physical and magical attack from strength,
// vigor, the elemental profile and the equipped weapon, if any.
func (a *Actor) calculateAttackRatings() {
	physical := a.stats[attribute.Strength].Value()
	magical := a.stats[attribute.Vigor].Value()
	if a.gear != nil {
		if w := a.gear.Weapon(); w != nil {
			physical += float32(w.PhysicalAttack())
			magical += float32(w.MagicalAttack())
		}
	}
	a.totalPhysicalAttack = toUint32(physical)
	for e := attribute.Element(0); e < attribute.ElementTotal; e++ {
		a.totalMagicalAttack[e] = toUint32(magical * a.elemental[e])
	}
}

// calculateDefenseRatings recomputes every attack point against the armor covering it.
func (a *Actor) calculateDefenseRatings() {
	for i, p := range a.attackPoints {
		p.CalculateTotalDefense(a.armorAt(i))
	}
}

func (a *Actor) calculateEvadeRatings() {
	for _, p := range a.attackPoints {
		p.CalculateTotalEvade()
	}
}

func (a *Actor) recalculateAll() {
	a.calculateAttackRatings()
	a.calculateDefenseRatings()
	a.calculateEvadeRatings()
}

func (a *Actor) armorAt(i int) *inventory.Armor {
	if a.gear == nil {
		return nil
	}
	return a.gear.Armor(i)
}

// copyInto deep-copies a into dst. Attack points are re-pointed at dst and
// skills are duplicated; the loadout is left for the caller to rebind.
func (a *Actor) copyInto(dst *Actor) {
	*dst = *a
	dst.gear = nil
	dst.attackPoints = make([]*AttackPoint, len(a.attackPoints))
	for i, p := range a.attackPoints {
		dst.attackPoints[i] = p.clone(dst)
	}
	dst.skills = make([]*skill.Skill, len(a.skills))
	for i, s := range a.skills {
		dst.skills[i] = s.Clone()
	}
	dst.skillIDs = append([]uint32(nil), a.skillIDs...)
}
