package actor

import (
	"math"

	"go.uber.org/zap"
)

// Growth is the set of stat gains applied on a level-up.
type Growth struct {
	HitPoints   uint32
	SkillPoints uint32
	Strength    uint32
	Vigor       uint32
	Fortitude   uint32
	Protection  uint32
	Agility     uint32
	Evade       float32
	// ExperienceForNextLevel is added to the character's remaining threshold,
	// so experience earned past the previous threshold carries over.
	ExperienceForNextLevel int32
}

// GrowthSource supplies level-up data for a character that has just gained a level.
type GrowthSource interface {
	// LevelGrowth returns the gains for c.ExperienceLevel().
	LevelGrowth(c *Character) (Growth, error)
	// NewSkillsLearned returns the skill ids learned at c.ExperienceLevel().
	NewSkillsLearned(c *Character) ([]uint32, error)
}

// TableGrowth is a GrowthSource backed by a character definition's growth table.
type TableGrowth struct {
	def *CharacterDef
}

// NewTableGrowth returns a GrowthSource reading def's growth and skill tables.
//
// Precondition: def is non-nil.
func NewTableGrowth(def *CharacterDef) *TableGrowth {
	return &TableGrowth{def: def}
}

// LevelGrowth returns the table entry for the character's level, summed when
// the table lists a level more than once. Missing levels grow nothing.
func (t *TableGrowth) LevelGrowth(c *Character) (Growth, error) {
	level := c.ExperienceLevel()
	var g Growth
	for _, lg := range t.def.Growth.Levels {
		if lg.Level != level {
			continue
		}
		g.HitPoints += lg.HitPoints
		g.SkillPoints += lg.SkillPoints
		g.Strength += lg.Strength
		g.Vigor += lg.Vigor
		g.Fortitude += lg.Fortitude
		g.Protection += lg.Protection
		g.Agility += lg.Agility
		g.Evade += lg.Evade
	}
	g.ExperienceForNextLevel = experienceThreshold(t.def, level)
	return g, nil
}

// NewSkillsLearned returns every skill whose level requirement equals the character's level.
func (t *TableGrowth) NewSkillsLearned(c *Character) ([]uint32, error) {
	level := c.ExperienceLevel()
	var ids []uint32
	for _, ls := range t.def.Skills {
		if ls.Level == level {
			ids = append(ids, ls.Skill)
		}
	}
	return ids, nil
}

// AddExperiencePoints adds xp to the character's experience and reduces the
// remaining threshold by the same amount.
//
// Postcondition: returns ReachedNewExperienceLevel().
func (c *Character) AddExperiencePoints(xp uint32) bool {
	c.experiencePoints = saturatingAdd(c.experiencePoints, xp)
	remaining := int64(c.experienceForNextLevel) - int64(xp)
	if remaining < math.MinInt32 {
		remaining = math.MinInt32
	}
	c.experienceForNextLevel = int32(remaining)
	return c.ReachedNewExperienceLevel()
}

// ReachedNewExperienceLevel reports whether a level-up is pending.
func (c *Character) ReachedNewExperienceLevel() bool {
	return c.experienceForNextLevel <= 0
}

// GrowthDeltas returns the gains applied by the most recent level-up.
func (c *Character) GrowthDeltas() Growth { return c.growth }

// AcknowledgeGrowth applies one pending level-up: the level rises by exactly
// one, the growth source is asked once for gains and once for new skills, and
// every non-zero gain is applied through the matching Add mutator. Current
// hit and skill points only rise when they are already above zero.
//
// Postcondition: returns false and changes nothing when no level-up is pending.
func (c *Character) AcknowledgeGrowth() bool {
	if !c.ReachedNewExperienceLevel() {
		return false
	}
	c.experienceLevel++
	c.growth = Growth{}

	g, err := c.growthSource.LevelGrowth(c)
	if err != nil {
		c.logger.Warn("level growth unavailable", zap.Uint32("level", c.experienceLevel), zap.Error(err))
	} else {
		c.growth = g
		c.experienceForNextLevel = addThreshold(c.experienceForNextLevel, g.ExperienceForNextLevel)
	}

	c.newSkillsLearned = nil
	ids, err := c.growthSource.NewSkillsLearned(c)
	if err != nil {
		c.logger.Warn("new skills unavailable", zap.Uint32("level", c.experienceLevel), zap.Error(err))
	}
	for _, id := range ids {
		c.AddNewSkillLearned(id)
	}

	d := c.growth
	if d.HitPoints != 0 {
		c.AddMaxHitPoints(d.HitPoints)
		if c.hitPoints > 0 {
			c.AddHitPoints(d.HitPoints)
		}
	}
	if d.SkillPoints != 0 {
		c.AddMaxSkillPoints(d.SkillPoints)
		if c.skillPoints > 0 {
			c.AddSkillPoints(d.SkillPoints)
		}
	}
	if d.Strength != 0 {
		c.AddStrength(d.Strength)
	}
	if d.Vigor != 0 {
		c.AddVigor(d.Vigor)
	}
	if d.Fortitude != 0 {
		c.AddFortitude(d.Fortitude)
	}
	if d.Protection != 0 {
		c.AddProtection(d.Protection)
	}
	if d.Agility != 0 {
		c.AddAgility(d.Agility)
	}
	if d.Evade != 0 {
		c.AddEvade(d.Evade)
	}
	return true
}

func addThreshold(remaining, next int32) int32 {
	sum := int64(remaining) + int64(next)
	switch {
	case sum > math.MaxInt32:
		return math.MaxInt32
	case sum < math.MinInt32:
		return math.MinInt32
	default:
		return int32(sum)
	}
}
