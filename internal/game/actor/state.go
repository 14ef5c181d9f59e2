package actor

import (
	"fmt"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
)

// CharacterState is the persisted, non-derived part of a character. Cached
// totals, stat modifiers and equipment status effects are rebuilt on restore.
type CharacterState struct {
	ID                     uint32       `json:"id"`
	ExperienceLevel        uint32       `json:"experience_level"`
	ExperienceForNextLevel int32        `json:"experience_for_next_level"`
	Enabled                bool         `json:"enabled"`
	Stats                  BaseStats    `json:"stats"`
	CurrentHitPoints       uint32       `json:"current_hit_points"`
	CurrentSkillPoints     uint32       `json:"current_skill_points"`
	Equipment              EquipmentIDs `json:"equipment"`
	PermanentSkills        []uint32     `json:"permanent_skills"`
}

// State captures c for persistence.
func (c *Character) State() CharacterState {
	st := CharacterState{
		ID:                     c.id,
		ExperienceLevel:        c.experienceLevel,
		ExperienceForNextLevel: c.experienceForNextLevel,
		Enabled:                c.enabled,
		Stats: BaseStats{
			HitPoints:        c.maxHitPoints,
			SkillPoints:      c.maxSkillPoints,
			ExperiencePoints: c.experiencePoints,
			Strength:         toUint32(c.stats[attribute.Strength].Base),
			Vigor:            toUint32(c.stats[attribute.Vigor].Base),
			Fortitude:        toUint32(c.stats[attribute.Fortitude].Base),
			Protection:       toUint32(c.stats[attribute.Protection].Base),
			Agility:          toUint32(c.stats[attribute.Agility].Base),
			Evade:            c.stats[attribute.Evade].Base,
		},
		CurrentHitPoints:   c.hitPoints,
		CurrentSkillPoints: c.skillPoints,
		PermanentSkills:    append([]uint32{}, c.permanentSkills...),
	}
	if w := c.equipment.weapon; w != nil {
		st.Equipment.Weapon = w.ID()
	}
	ids := [...]*uint32{&st.Equipment.Head, &st.Equipment.Torso, &st.Equipment.Arms, &st.Equipment.Legs}
	for pos, a := range c.equipment.armor {
		if a != nil {
			*ids[pos] = a.ID()
		}
	}
	return st
}

// RestoreCharacter rebuilds a character from its definition and persisted state.
//
// Precondition: def passes Validate and state.ID == def.ID.
// Postcondition: all cached totals and equipment status effects are current;
// current hit and skill points never exceed their maxima.
func RestoreCharacter(def *CharacterDef, state CharacterState, deps Deps) (*Character, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("actor: RestoreCharacter: %w", err)
	}
	if state.ID != def.ID {
		return nil, fmt.Errorf("actor: RestoreCharacter: state for character %d applied to definition %d", state.ID, def.ID)
	}
	if state.ExperienceLevel == 0 {
		return nil, fmt.Errorf("actor: RestoreCharacter %d: experience level must be >= 1", def.ID)
	}
	deps = deps.withDefaults()
	c := newCharacter(def, deps)

	c.experienceLevel = state.ExperienceLevel
	c.experienceForNextLevel = state.ExperienceForNextLevel
	c.enabled = state.Enabled
	c.experiencePoints = state.Stats.ExperiencePoints
	c.maxHitPoints = state.Stats.HitPoints
	c.hitPoints = min(state.CurrentHitPoints, c.maxHitPoints)
	c.maxSkillPoints = state.Stats.SkillPoints
	c.skillPoints = min(state.CurrentSkillPoints, c.maxSkillPoints)
	c.setBases(state.Stats)

	if err := c.equipIDs(state.Equipment, deps.Items); err != nil {
		return nil, fmt.Errorf("actor: RestoreCharacter %d: %w", def.ID, err)
	}
	for _, id := range state.PermanentSkills {
		c.AddSkill(id, true)
	}

	c.refresh()
	return c, nil
}
