package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/actorcore/internal/game/actor"
)

// ErrCharacterNotFound is returned when no roster row exists for a character id.
var ErrCharacterNotFound = errors.New("character not found")

// RosterRepository persists actor.CharacterState rows keyed by character id.
type RosterRepository struct {
	db *pgxpool.Pool
}

// NewRosterRepository creates a RosterRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewRosterRepository(db *pgxpool.Pool) *RosterRepository {
	return &RosterRepository{db: db}
}

const rosterColumns = `
	id, experience_level, experience_points, experience_for_next_level, enabled,
	max_hit_points, hit_points, max_skill_points, skill_points,
	strength, vigor, fortitude, protection, agility, evade,
	weapon_id, head_armor_id, torso_armor_id, arm_armor_id, leg_armor_id,
	permanent_skills`

// Save inserts or replaces the state of one character.
//
// Precondition: st.ID > 0 and st.ExperienceLevel >= 1.
// Postcondition: Load(st.ID) returns st.
func (r *RosterRepository) Save(ctx context.Context, st actor.CharacterState) error {
	return saveState(ctx, r.db, st)
}

// Load returns the stored state of character id.
//
// Postcondition: Returns ErrCharacterNotFound when no row exists.
func (r *RosterRepository) Load(ctx context.Context, id uint32) (actor.CharacterState, error) {
	row := r.db.QueryRow(ctx, `SELECT `+rosterColumns+` FROM roster_characters WHERE id = $1`, int64(id))
	st, err := scanState(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return actor.CharacterState{}, ErrCharacterNotFound
		}
		return actor.CharacterState{}, fmt.Errorf("loading roster character %d: %w", id, err)
	}
	return st, nil
}

// List returns every stored state ordered by id.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *RosterRepository) List(ctx context.Context) ([]actor.CharacterState, error) {
	rows, err := r.db.Query(ctx, `SELECT `+rosterColumns+` FROM roster_characters ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing roster: %w", err)
	}
	defer rows.Close()

	out := make([]actor.CharacterState, 0)
	for rows.Next() {
		st, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning roster row: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Delete removes character id.
//
// Postcondition: Returns ErrCharacterNotFound when no row existed.
func (r *RosterRepository) Delete(ctx context.Context, id uint32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roster_characters WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("deleting roster character %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCharacterNotFound
	}
	return nil
}

// SaveParty stores every member of p in a single transaction.
//
// Postcondition: either every member is saved or none is.
func (r *RosterRepository) SaveParty(ctx context.Context, p *actor.Party) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, c := range p.Characters() {
			if err := saveState(ctx, tx, c.State()); err != nil {
				return err
			}
		}
		return nil
	})
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func saveState(ctx context.Context, q execer, st actor.CharacterState) error {
	_, err := q.Exec(ctx, `
		INSERT INTO roster_characters (`+rosterColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		ON CONFLICT (id) DO UPDATE SET
			experience_level = EXCLUDED.experience_level,
			experience_points = EXCLUDED.experience_points,
			experience_for_next_level = EXCLUDED.experience_for_next_level,
			enabled = EXCLUDED.enabled,
			max_hit_points = EXCLUDED.max_hit_points,
			hit_points = EXCLUDED.hit_points,
			max_skill_points = EXCLUDED.max_skill_points,
			skill_points = EXCLUDED.skill_points,
			strength = EXCLUDED.strength,
			vigor = EXCLUDED.vigor,
			fortitude = EXCLUDED.fortitude,
			protection = EXCLUDED.protection,
			agility = EXCLUDED.agility,
			evade = EXCLUDED.evade,
			weapon_id = EXCLUDED.weapon_id,
			head_armor_id = EXCLUDED.head_armor_id,
			torso_armor_id = EXCLUDED.torso_armor_id,
			arm_armor_id = EXCLUDED.arm_armor_id,
			leg_armor_id = EXCLUDED.leg_armor_id,
			permanent_skills = EXCLUDED.permanent_skills,
			updated_at = NOW()`,
		int64(st.ID), int32(st.ExperienceLevel), int64(st.Stats.ExperiencePoints), st.ExperienceForNextLevel, st.Enabled,
		int64(st.Stats.HitPoints), int64(st.CurrentHitPoints), int64(st.Stats.SkillPoints), int64(st.CurrentSkillPoints),
		int64(st.Stats.Strength), int64(st.Stats.Vigor), int64(st.Stats.Fortitude),
		int64(st.Stats.Protection), int64(st.Stats.Agility), st.Stats.Evade,
		int64(st.Equipment.Weapon), int64(st.Equipment.Head), int64(st.Equipment.Torso),
		int64(st.Equipment.Arms), int64(st.Equipment.Legs),
		toInt64s(st.PermanentSkills),
	)
	if err != nil {
		return fmt.Errorf("saving roster character %d: %w", st.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanState(row rowScanner) (actor.CharacterState, error) {
	var (
		id, xp, maxHP, hp, maxSP, sp    int64
		str, vig, fort, prot, agi       int64
		weapon, head, torso, arms, legs int64
		level, nextLevel                int32
		evade                           float32
		skills                          []int64
		st                              actor.CharacterState
	)
	if err := row.Scan(
		&id, &level, &xp, &nextLevel, &st.Enabled,
		&maxHP, &hp, &maxSP, &sp,
		&str, &vig, &fort, &prot, &agi, &evade,
		&weapon, &head, &torso, &arms, &legs,
		&skills,
	); err != nil {
		return actor.CharacterState{}, err
	}
	st.ID = uint32(id)
	st.ExperienceLevel = uint32(level)
	st.ExperienceForNextLevel = nextLevel
	st.CurrentHitPoints = uint32(hp)
	st.CurrentSkillPoints = uint32(sp)
	st.Stats = actor.BaseStats{
		HitPoints:        uint32(maxHP),
		SkillPoints:      uint32(maxSP),
		ExperiencePoints: uint32(xp),
		Strength:         uint32(str),
		Vigor:            uint32(vig),
		Fortitude:        uint32(fort),
		Protection:       uint32(prot),
		Agility:          uint32(agi),
		Evade:            evade,
	}
	st.Equipment = actor.EquipmentIDs{
		Weapon: uint32(weapon),
		Head:   uint32(head),
		Torso:  uint32(torso),
		Arms:   uint32(arms),
		Legs:   uint32(legs),
	}
	st.PermanentSkills = make([]uint32, len(skills))
	for i, v := range skills {
		st.PermanentSkills[i] = uint32(v)
	}
	return st, nil
}

func toInt64s(in []uint32) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
