package actor

import (
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/skill"
	"github.com/cory-johannsen/actorcore/internal/game/status"
)

// DefaultExperienceForNextLevel is used when the growth table has no entry for a level.
const DefaultExperienceForNextLevel int32 = 100000

// Character is a playable actor with equipment, permanent skills and growth.
type Character struct {
	Actor

	experienceLevel        uint32
	experienceForNextLevel int32
	enabled                bool

	equipment              EquipmentSet
	equipmentStatusEffects status.Intensities

	permanentSkills  []uint32
	newSkillsLearned []*skill.Skill
	weaponSkills     []*skill.Skill
	magicSkills      []*skill.Skill
	specialSkills    []*skill.Skill
	bareHandsSkills  []*skill.Skill

	growth       Growth
	growthSource GrowthSource
	aggregator   *status.Aggregator
}

func newCharacter(def *CharacterDef, deps Deps) *Character {
	c := &Character{
		Actor:      newActor(def.ID, def.Name, deps),
		enabled:    true,
		aggregator: status.NewAggregator(deps.Status, deps.Logger),
	}
	c.gear = &c.equipment
	c.setElementalProfile(elementalProfile(def.ElementalModifiers))
	c.growthSource = deps.Growth
	if c.growthSource == nil {
		c.growthSource = NewTableGrowth(def)
	}
	c.attackPoints = make([]*AttackPoint, len(def.AttackPoints))
	for i, apd := range def.AttackPoints {
		c.attackPoints[i] = NewAttackPoint(&c.Actor, apd, c.logger)
	}
	return c
}

// NewCharacter builds a character from its definition's initial template:
// initial stats and equipment, bare-hands skills and every skill whose level
// requirement is met.
//
// Precondition: def passes Validate.
// Postcondition: all cached totals and equipment status effects are current;
// returns an error when def is invalid or names equipment the item source does not know.
func NewCharacter(def *CharacterDef, deps Deps) (*Character, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("actor: NewCharacter: %w", err)
	}
	deps = deps.withDefaults()
	c := newCharacter(def, deps)

	start := def.Initial
	c.experienceLevel = start.ExperienceLevel
	c.experiencePoints = start.ExperiencePoints
	c.maxHitPoints = start.HitPoints
	c.hitPoints = c.maxHitPoints
	c.maxSkillPoints = start.SkillPoints
	c.skillPoints = c.maxSkillPoints
	c.setBases(start.BaseStats)

	if err := c.equipIDs(start.Equipment, deps.Items); err != nil {
		return nil, fmt.Errorf("actor: NewCharacter %d: %w", def.ID, err)
	}

	for _, id := range def.BareHandsSkills {
		c.AddSkill(id, true)
	}
	levelSkills := append([]LevelSkill(nil), def.Skills...)
	sort.SliceStable(levelSkills, func(i, j int) bool { return levelSkills[i].Level < levelSkills[j].Level })
	for _, ls := range levelSkills {
		if ls.Level > c.experienceLevel {
			break
		}
		c.AddSkill(ls.Skill, true)
	}

	if int(c.experienceLevel) > len(def.Growth.ExperienceForNextLevel) {
		c.logger.Error("no experience threshold for level; using default",
			zap.Uint32("level", c.experienceLevel),
			zap.Int32("default", DefaultExperienceForNextLevel),
		)
	}
	c.experienceForNextLevel = experienceThreshold(def, c.experienceLevel)

	c.refresh()
	return c, nil
}

// experienceThreshold returns the experience needed to leave level.
func experienceThreshold(def *CharacterDef, level uint32) int32 {
	if level == 0 || int(level) > len(def.Growth.ExperienceForNextLevel) {
		return DefaultExperienceForNextLevel
	}
	return def.Growth.ExperienceForNextLevel[level-1]
}

func (c *Character) setBases(b BaseStats) {
	c.stats[attribute.Strength].Base = float32(b.Strength)
	c.stats[attribute.Vigor].Base = float32(b.Vigor)
	c.stats[attribute.Fortitude].Base = float32(b.Fortitude)
	c.stats[attribute.Protection].Base = float32(b.Protection)
	c.stats[attribute.Agility].Base = float32(b.Agility)
	c.stats[attribute.Evade].Base = b.Evade
}

// equipIDs places the given equipment directly into the slots without recomputation.
func (c *Character) equipIDs(ids EquipmentIDs, items inventory.Source) error {
	if ids.Weapon != 0 {
		def, ok := items.Weapon(ids.Weapon)
		if !ok {
			return fmt.Errorf("unknown weapon %d", ids.Weapon)
		}
		c.equipment.weapon = inventory.NewWeapon(def)
	}
	for pos, id := range ids.armorIDs() {
		if id == 0 {
			continue
		}
		def, ok := items.Armor(id)
		if !ok {
			return fmt.Errorf("unknown armor %d", id)
		}
		c.equipment.armor[pos] = inventory.NewArmor(def)
	}
	return nil
}

// refresh rebuilds skills, equipment status effects and every cached total.
func (c *Character) refresh() {
	c.updateAvailableSkills()
	c.updateEquipmentStatusEffects()
	c.recalculateAll()
}

// ExperienceLevel returns the current level.
func (c *Character) ExperienceLevel() uint32 { return c.experienceLevel }

// ExperienceForNextLevel returns the experience still needed to level up; <= 0 means a level is pending.
func (c *Character) ExperienceForNextLevel() int32 { return c.experienceForNextLevel }

// Enabled reports whether the character is available for the active party.
func (c *Character) Enabled() bool { return c.enabled }

// SetEnabled toggles availability.
func (c *Character) SetEnabled(enabled bool) { c.enabled = enabled }

// Weapon returns the equipped weapon, or nil.
func (c *Character) Weapon() *inventory.Weapon { return c.equipment.weapon }

// Armor returns the armor at position, or nil with a warning when position is out of range.
func (c *Character) Armor(position int) *inventory.Armor {
	if position < 0 || position >= inventory.PositionCount {
		c.logger.Warn("armor position out of range", zap.Int("index", position))
		return nil
	}
	return c.equipment.armor[position]
}

// HasEquipment reports whether any equipment slot is occupied.
func (c *Character) HasEquipment() bool { return c.equipment.HasEquipment() }

// EquipWeapon swaps in w (nil to unequip) and returns the previous weapon,
// whose ownership passes to the caller. Equipment status effects are
// recomputed first, then attack ratings, then available skills.
func (c *Character) EquipWeapon(w *inventory.Weapon) *inventory.Weapon {
	old := c.equipment.weapon
	c.equipment.weapon = w

	c.updateEquipmentStatusEffects()
	c.calculateAttackRatings()
	c.updateAvailableSkills()
	return old
}

// UnequipWeapon removes and returns the equipped weapon.
func (c *Character) UnequipWeapon() *inventory.Weapon { return c.EquipWeapon(nil) }

// EquipArmor swaps armor (nil to unequip) into position and returns the
// previous piece. When position is out of range nothing changes and armor
// itself is handed back. Only the covered attack point's defense is recomputed.
//
// Postcondition: the returned armor is owned by the caller.
func (c *Character) EquipArmor(armor *inventory.Armor, position int) *inventory.Armor {
	if position < 0 || position >= inventory.PositionCount {
		c.logger.Warn("armor position out of range", zap.Int("index", position))
		return armor
	}
	old := c.equipment.armor[position]
	c.equipment.armor[position] = armor

	if old != nil && armor != nil && old.ObjectType() != armor.ObjectType() {
		c.logger.Warn("armor replaced with a different armor category",
			zap.Int("index", position),
			zap.Stringer("old", old.ObjectType()),
			zap.Stringer("new", armor.ObjectType()),
		)
	}

	c.updateEquipmentStatusEffects()
	if position < len(c.attackPoints) {
		c.attackPoints[position].CalculateTotalDefense(armor)
	}
	c.updateAvailableSkills()
	return old
}

// EquipHeadArmor equips head armor and returns the previous piece.
func (c *Character) EquipHeadArmor(a *inventory.Armor) *inventory.Armor {
	return c.EquipArmor(a, inventory.PositionHead)
}

// EquipTorsoArmor equips torso armor and returns the previous piece.
func (c *Character) EquipTorsoArmor(a *inventory.Armor) *inventory.Armor {
	return c.EquipArmor(a, inventory.PositionTorso)
}

// EquipArmArmor equips arm armor and returns the previous piece.
func (c *Character) EquipArmArmor(a *inventory.Armor) *inventory.Armor {
	return c.EquipArmor(a, inventory.PositionArms)
}

// EquipLegArmor equips leg armor and returns the previous piece.
func (c *Character) EquipLegArmor(a *inventory.Armor) *inventory.Armor {
	return c.EquipArmor(a, inventory.PositionLegs)
}

// UnequipArmor removes and returns the armor at position.
func (c *Character) UnequipArmor(position int) *inventory.Armor { return c.EquipArmor(nil, position) }

// EquipmentStatusEffects returns the aggregated passive intensity per status type.
func (c *Character) EquipmentStatusEffects() status.Intensities { return c.equipmentStatusEffects }

// EquipmentStatusEffect returns the aggregated passive intensity of t.
func (c *Character) EquipmentStatusEffect(t status.Type) status.Intensity {
	if !t.Valid() {
		return status.IntensityNeutral
	}
	return c.equipmentStatusEffects[t]
}

// updateEquipmentStatusEffects re-sums every equipped item's effects and
// dispatches apply/remove for each status type.
func (c *Character) updateEquipmentStatusEffects() {
	c.equipmentStatusEffects = c.aggregator.Sum(c.equipment.statusSources()...)
	c.aggregator.Dispatch(c, c.equipmentStatusEffects)
}

// AddSkill makes the skill usable. A skill already known is only promoted to
// permanent when requested. Unknown ids and unknown skill types are rejected.
//
// Postcondition: returns true iff HasSkill(id) afterwards.
func (c *Character) AddSkill(id uint32, permanently bool) bool {
	def, ok := c.lookupSkill(id)
	if !ok {
		return false
	}
	if c.HasSkill(id) {
		if permanently && !slices.Contains(c.permanentSkills, id) {
			c.permanentSkills = append(c.permanentSkills, id)
		}
		return true
	}

	s := skill.New(def)
	switch def.Type() {
	case skill.TypeWeapon:
		c.weaponSkills = append(c.weaponSkills, s)
	case skill.TypeMagic:
		c.magicSkills = append(c.magicSkills, s)
	case skill.TypeSpecial:
		c.specialSkills = append(c.specialSkills, s)
	case skill.TypeBareHands:
		c.bareHandsSkills = append(c.bareHandsSkills, s)
	default:
		c.logger.Warn("skill has an unknown skill type",
			zap.Uint32("skill_id", id),
			zap.Stringer("type", def.Type()),
		)
		return false
	}
	c.appendSkill(s)
	if permanently {
		c.permanentSkills = append(c.permanentSkills, id)
	}
	return true
}

// AddNewSkillLearned permanently adds the skill and records it as learned at
// the current level. Duplicates within the current level's list are rejected.
func (c *Character) AddNewSkillLearned(id uint32) bool {
	if id == 0 {
		c.logger.Warn("invalid skill id", zap.Uint32("skill_id", id))
		return false
	}
	for _, s := range c.newSkillsLearned {
		if s.ID() == id {
			c.logger.Warn("skill already in newly learned list", zap.Uint32("skill_id", id))
			return false
		}
	}
	if !c.AddSkill(id, true) {
		c.logger.Warn("newly learned skill could not be added", zap.Uint32("skill_id", id))
		return false
	}
	def, _ := c.skillSource.Skill(id)
	c.newSkillsLearned = append(c.newSkillsLearned, skill.New(def))
	return true
}

// updateAvailableSkills rebuilds the usable skills: permanent skills first,
// then weapon skills, then armor skills in slot order.
func (c *Character) updateAvailableSkills() {
	c.clearSkills()
	c.weaponSkills = nil
	c.magicSkills = nil
	c.specialSkills = nil
	c.bareHandsSkills = nil

	for _, id := range c.permanentSkills {
		c.AddSkill(id, false)
	}
	for _, id := range c.equipment.skillIDs() {
		c.AddSkill(id, false)
	}
}

// PermanentSkills returns the ids of skills kept regardless of equipment.
func (c *Character) PermanentSkills() []uint32 {
	return append([]uint32(nil), c.permanentSkills...)
}

// NewSkillsLearned returns the skills learned on the most recent level-up.
func (c *Character) NewSkillsLearned() []*skill.Skill {
	return append([]*skill.Skill(nil), c.newSkillsLearned...)
}

// WeaponSkills returns the usable weapon skills.
func (c *Character) WeaponSkills() []*skill.Skill {
	return append([]*skill.Skill(nil), c.weaponSkills...)
}

// MagicSkills returns the usable magic skills.
func (c *Character) MagicSkills() []*skill.Skill {
	return append([]*skill.Skill(nil), c.magicSkills...)
}

// SpecialSkills returns the usable special skills.
func (c *Character) SpecialSkills() []*skill.Skill {
	return append([]*skill.Skill(nil), c.specialSkills...)
}

// BareHandsSkills returns the usable bare-hands skills.
func (c *Character) BareHandsSkills() []*skill.Skill {
	return append([]*skill.Skill(nil), c.bareHandsSkills...)
}

// Clone returns an independent deep copy: attack points, skills and equipped
// items are duplicated and the copy's equipment drives its own totals.
func (c *Character) Clone() *Character {
	dst := &Character{}
	*dst = *c
	c.Actor.copyInto(&dst.Actor)
	dst.equipment = c.equipment.clone()
	dst.gear = &dst.equipment
	dst.permanentSkills = append([]uint32(nil), c.permanentSkills...)
	dst.newSkillsLearned = cloneSkills(c.newSkillsLearned)

	// Buckets must reference the copy's own skill instances.
	dst.weaponSkills, dst.magicSkills, dst.specialSkills, dst.bareHandsSkills = nil, nil, nil, nil
	for _, s := range dst.skills {
		switch s.Type() {
		case skill.TypeWeapon:
			dst.weaponSkills = append(dst.weaponSkills, s)
		case skill.TypeMagic:
			dst.magicSkills = append(dst.magicSkills, s)
		case skill.TypeSpecial:
			dst.specialSkills = append(dst.specialSkills, s)
		case skill.TypeBareHands:
			dst.bareHandsSkills = append(dst.bareHandsSkills, s)
		}
	}
	return dst
}

func cloneSkills(in []*skill.Skill) []*skill.Skill {
	if in == nil {
		return nil
	}
	out := make([]*skill.Skill, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
