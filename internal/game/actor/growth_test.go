package actor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/actorcore/internal/game/actor"
	"github.com/cory-johannsen/actorcore/internal/game/attribute"
)

func TestAddExperiencePoints_ReachesLevel(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	assert.False(t, c.AddExperiencePoints(60))
	assert.Equal(t, int32(40), c.ExperienceForNextLevel())
	assert.True(t, c.AddExperiencePoints(90))
	assert.Equal(t, int32(-50), c.ExperienceForNextLevel())
	assert.Equal(t, uint32(150), c.ExperiencePoints())
}

func TestAcknowledgeGrowth_AppliesOneLevel(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.SubtractHitPoints(30)
	require.True(t, c.AddExperiencePoints(150))

	require.True(t, c.AcknowledgeGrowth())
	assert.Equal(t, uint32(2), c.ExperienceLevel())
	// 200 for level 2 minus the 50 carried over
	assert.Equal(t, int32(150), c.ExperienceForNextLevel())
	assert.Equal(t, uint32(110), c.MaxHitPoints())
	assert.Equal(t, uint32(80), c.HitPoints())
	assert.Equal(t, uint32(25), c.MaxSkillPoints())
	assert.Equal(t, uint32(25), c.SkillPoints())
	assert.Equal(t, float32(12), c.StatBase(attribute.Strength))
	assert.InDelta(t, 0.15, c.StatBase(attribute.Evade), 1e-6)
	assert.Equal(t, uint32(12), c.TotalPhysicalAttack())

	g := c.GrowthDeltas()
	assert.Equal(t, uint32(10), g.HitPoints)
	assert.Equal(t, uint32(2), g.Strength)

	require.Len(t, c.NewSkillsLearned(), 1)
	assert.Equal(t, skillParry, c.NewSkillsLearned()[0].ID())
	assert.True(t, c.HasSkill(skillParry))
	assert.Contains(t, c.PermanentSkills(), skillParry)

	assert.False(t, c.AcknowledgeGrowth())
	assert.Equal(t, uint32(2), c.ExperienceLevel())
}

func TestAcknowledgeGrowth_OneLevelPerCall(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	require.True(t, c.AddExperiencePoints(400))

	require.True(t, c.AcknowledgeGrowth())
	assert.Equal(t, int32(-100), c.ExperienceForNextLevel())
	require.True(t, c.AcknowledgeGrowth())
	assert.Equal(t, uint32(3), c.ExperienceLevel())
	assert.Equal(t, int32(200), c.ExperienceForNextLevel())
	assert.Equal(t, float32(11), c.StatBase(attribute.Vigor))
	assert.Empty(t, c.NewSkillsLearned())
	assert.False(t, c.AcknowledgeGrowth())
}

func TestAcknowledgeGrowth_DeadCharacterStaysDown(t *testing.T) {
	c := newTestCharacter(t, testDeps(t, nil))
	c.SubtractHitPoints(1000)
	c.AddExperiencePoints(100)
	require.True(t, c.AcknowledgeGrowth())
	assert.Equal(t, uint32(110), c.MaxHitPoints())
	assert.Equal(t, uint32(0), c.HitPoints())
}

type stubGrowth struct {
	growth     actor.Growth
	skills     []uint32
	err        error
	levelCalls int
	skillCalls int
}

func (s *stubGrowth) LevelGrowth(*actor.Character) (actor.Growth, error) {
	s.levelCalls++
	return s.growth, s.err
}

func (s *stubGrowth) NewSkillsLearned(*actor.Character) ([]uint32, error) {
	s.skillCalls++
	return s.skills, s.err
}

func TestAcknowledgeGrowth_QueriesSourceOnce(t *testing.T) {
	src := &stubGrowth{
		growth: actor.Growth{Protection: 4, Agility: 1, ExperienceForNextLevel: 500},
		skills: []uint32{skillFire, skillFire, skillRally},
	}
	deps := testDeps(t, nil)
	deps.Growth = src
	c := newTestCharacter(t, deps)
	c.AddExperiencePoints(100)

	require.True(t, c.AcknowledgeGrowth())
	assert.Equal(t, 1, src.levelCalls)
	assert.Equal(t, 1, src.skillCalls)
	assert.Equal(t, int32(500), c.ExperienceForNextLevel())
	assert.Equal(t, uint32(8), c.TotalMagicalDefense(0, attribute.Neutral))
	assert.Equal(t, float32(6), c.StatBase(attribute.Agility))
	assert.Len(t, c.NewSkillsLearned(), 2)
}

func TestAcknowledgeGrowth_SourceErrorLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	src := &stubGrowth{err: errors.New("table missing")}
	deps := testDeps(t, zap.New(core))
	deps.Growth = src
	c := newTestCharacter(t, deps)
	c.AddExperiencePoints(100)

	require.True(t, c.AcknowledgeGrowth())
	assert.Equal(t, uint32(2), c.ExperienceLevel())
	assert.Equal(t, actor.Growth{}, c.GrowthDeltas())
	assert.Equal(t, 1, logs.FilterMessage("level growth unavailable").Len())
	assert.Equal(t, 1, logs.FilterMessage("new skills unavailable").Len())
}

func TestTableGrowth_SumsRepeatedLevels(t *testing.T) {
	def := testCharacterDef()
	def.Growth.Levels = append(def.Growth.Levels, actor.LevelGrowth{Level: 2, Strength: 1, Agility: 2})
	def.Skills = append(def.Skills, actor.LevelSkill{Level: 2, Skill: skillRally})
	c, err := actor.NewCharacter(def, testDeps(t, nil))
	require.NoError(t, err)
	c.AddExperiencePoints(100)
	require.True(t, c.AcknowledgeGrowth())

	g, err := actor.NewTableGrowth(def).LevelGrowth(c)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), g.Strength)
	assert.Equal(t, uint32(2), g.Agility)
	assert.Equal(t, int32(200), g.ExperienceForNextLevel)

	ids, err := actor.NewTableGrowth(def).NewSkillsLearned(c)
	require.NoError(t, err)
	assert.Equal(t, []uint32{skillParry, skillRally}, ids)
}
