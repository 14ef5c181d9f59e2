package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/actorcore/internal/config"
	"github.com/cory-johannsen/actorcore/internal/game/actor"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/internal/game/status"
	"github.com/cory-johannsen/actorcore/internal/storage/redis"
)

func newTestCache(t *testing.T, ttl time.Duration) (*redis.SheetCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewSheetCache(client, ttl, nil), mr
}

func newCharacter(t *testing.T, id uint32) *actor.Character {
	t.Helper()
	items := inventory.NewRegistry()
	require.NoError(t, items.RegisterWeapon(&inventory.WeaponDef{
		ID: 10001, Name: "Sword", PhysicalAttack: 10,
		StatusEffects: []status.Effect{{Type: status.Fire, Intensity: status.PosLesser}},
	}))
	require.NoError(t, items.RegisterArmor(&inventory.ArmorDef{
		ID: 20001, Name: "Cap", Slot: inventory.SlotHead, PhysicalDefense: 5, MagicalDefense: 3,
	}))
	c, err := actor.NewCharacter(&actor.CharacterDef{
		ID:   id,
		Name: "Laila",
		Initial: actor.InitialStats{
			BaseStats:       actor.BaseStats{HitPoints: 100, SkillPoints: 20, Strength: 10, Vigor: 8, Fortitude: 6, Protection: 4},
			ExperienceLevel: 2,
			Equipment:       actor.EquipmentIDs{Weapon: 10001, Head: 20001},
		},
		AttackPoints: []actor.AttackPointDef{
			{Name: "Head", FortitudeModifier: 0.5, ProtectionModifier: 0.5},
			{Name: "Torso", FortitudeModifier: 1, ProtectionModifier: 1},
			{Name: "Arms", FortitudeModifier: 1, ProtectionModifier: 1},
			{Name: "Legs", FortitudeModifier: 1, ProtectionModifier: 1},
		},
	}, actor.Deps{Items: items})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresAddr(t *testing.T) {
	_, err := redis.NewClient(config.RedisConfig{})
	assert.Error(t, err)
}

func TestSheetCache_PutGet(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	sheet := newCharacter(t, 1).Sheet()

	require.NoError(t, cache.Put(ctx, sheet))
	assert.True(t, mr.Exists("sheet:character:1"))

	got, err := cache.Get(ctx, actor.KindCharacter, 1)
	require.NoError(t, err)
	assert.Equal(t, sheet, got)
	assert.Equal(t, uint32(20001), got.Armor["head"])
	assert.Equal(t, 1, got.StatusEffects["fire"])
}

func TestSheetCache_GetMissing(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	_, err := cache.Get(context.Background(), actor.KindEnemy, 9)
	assert.ErrorIs(t, err, redis.ErrSheetNotFound)
}

func TestSheetCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, newCharacter(t, 2).Sheet()))
	assert.Equal(t, time.Minute, mr.TTL("sheet:character:2"))

	mr.FastForward(2 * time.Minute)
	_, err := cache.Get(ctx, actor.KindCharacter, 2)
	assert.ErrorIs(t, err, redis.ErrSheetNotFound)
}

func TestSheetCache_DefaultTTL(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	require.NoError(t, cache.Put(context.Background(), newCharacter(t, 3).Sheet()))
	assert.Equal(t, redis.DefaultSheetTTL, mr.TTL("sheet:character:3"))
}

func TestSheetCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, newCharacter(t, 4).Sheet()))
	require.NoError(t, cache.Delete(ctx, actor.KindCharacter, 4))
	require.NoError(t, cache.Delete(ctx, actor.KindCharacter, 4))
	_, err := cache.Get(ctx, actor.KindCharacter, 4)
	assert.ErrorIs(t, err, redis.ErrSheetNotFound)
}

func TestSheetCache_PutParty(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()
	cache := redis.NewSheetCache(client, time.Minute, zap.New(core))

	party := actor.NewParty(false, nil)
	require.True(t, party.AddCharacter(newCharacter(t, 5), -1))
	require.True(t, party.AddCharacter(newCharacter(t, 6), -1))
	require.NoError(t, cache.PutParty(context.Background(), party))

	assert.True(t, mr.Exists("sheet:character:5"))
	assert.True(t, mr.Exists("sheet:character:6"))
	assert.Equal(t, 1, logs.FilterMessage("party sheets cached").Len())
}

func TestSheetCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	mr.Close()
	ctx := context.Background()
	assert.Error(t, cache.Put(ctx, newCharacter(t, 7).Sheet()))
	_, err := cache.Get(ctx, actor.KindCharacter, 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, redis.ErrSheetNotFound)
}
