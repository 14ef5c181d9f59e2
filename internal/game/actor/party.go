package actor

import (
	"fmt"

	"go.uber.org/zap"
)

// Party is an ordered roster of characters. The party does not own its
// members; removing a character hands it back to the caller.
type Party struct {
	members         []*Character
	allowDuplicates bool
	logger          *zap.Logger
}

// NewParty returns an empty party. When allowDuplicates is set the same
// character may appear more than once and the by-id operations are refused.
func NewParty(allowDuplicates bool, logger *zap.Logger) *Party {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Party{allowDuplicates: allowDuplicates, logger: logger}
}

// AllowDuplicates reports whether the party accepts the same character twice.
func (p *Party) AllowDuplicates() bool { return p.allowDuplicates }

// Len returns the number of members.
func (p *Party) Len() int { return len(p.members) }

// IsEmpty reports whether the party has no members.
func (p *Party) IsEmpty() bool { return len(p.members) == 0 }

// Characters returns the members in order. The slice is a copy.
func (p *Party) Characters() []*Character { return append([]*Character(nil), p.members...) }

// AddCharacter inserts c before index. A negative or out-of-range index appends.
//
// Postcondition: returns false, with a warning, when c is nil or already a
// member of a party that does not allow duplicates.
func (p *Party) AddCharacter(c *Character, index int) bool {
	if c == nil {
		p.logger.Warn("refusing to add nil character to party")
		return false
	}
	if !p.allowDuplicates && p.indexOf(c.ID()) >= 0 {
		p.logger.Warn("character already in party", zap.Uint32("character_id", c.ID()))
		return false
	}
	if index < 0 || index >= len(p.members) {
		p.members = append(p.members, c)
		return true
	}
	p.members = append(p.members, nil)
	copy(p.members[index+1:], p.members[index:])
	p.members[index] = c
	return true
}

// RemoveCharacterAtIndex removes and returns the member at index, or nil with
// a warning when index is out of range.
func (p *Party) RemoveCharacterAtIndex(index int) *Character {
	if !p.validIndex(index) {
		return nil
	}
	c := p.members[index]
	p.members = append(p.members[:index], p.members[index+1:]...)
	return c
}

// RemoveCharacterByID removes and returns the member with id.
func (p *Party) RemoveCharacterByID(id uint32) (*Character, error) {
	i, err := p.lookup(id)
	if err != nil {
		return nil, err
	}
	return p.RemoveCharacterAtIndex(i), nil
}

// CharacterAtIndex returns the member at index, or nil with a warning when out of range.
func (p *Party) CharacterAtIndex(index int) *Character {
	if !p.validIndex(index) {
		return nil
	}
	return p.members[index]
}

// CharacterByID returns the member with id.
func (p *Party) CharacterByID(id uint32) (*Character, error) {
	i, err := p.lookup(id)
	if err != nil {
		return nil, err
	}
	return p.members[i], nil
}

// SwapCharactersByIndex exchanges the positions of two members.
func (p *Party) SwapCharactersByIndex(first, second int) {
	if first == second {
		p.logger.Warn("swap indices are identical", zap.Int("index", first))
		return
	}
	if !p.validIndex(first) || !p.validIndex(second) {
		return
	}
	p.members[first], p.members[second] = p.members[second], p.members[first]
}

// SwapCharactersByID exchanges the positions of two members.
func (p *Party) SwapCharactersByID(first, second uint32) error {
	if first == second {
		p.logger.Warn("swap ids are identical", zap.Uint32("character_id", first))
		return nil
	}
	i, err := p.lookup(first)
	if err != nil {
		return err
	}
	j, err := p.lookup(second)
	if err != nil {
		return err
	}
	p.members[i], p.members[j] = p.members[j], p.members[i]
	return nil
}

// ReplaceCharacterByIndex puts c at index and returns the member it displaced.
// Nothing changes, and nil is returned, when c is nil or index is out of range.
func (p *Party) ReplaceCharacterByIndex(index int, c *Character) *Character {
	if c == nil {
		p.logger.Warn("refusing to place nil character in party")
		return nil
	}
	if !p.validIndex(index) {
		return nil
	}
	old := p.members[index]
	p.members[index] = c
	return old
}

// ReplaceCharacterByID puts c in place of the member with id and returns the
// displaced member.
func (p *Party) ReplaceCharacterByID(id uint32, c *Character) (*Character, error) {
	if c == nil {
		return nil, fmt.Errorf("actor: replace character %d: nil replacement", id)
	}
	i, err := p.lookup(id)
	if err != nil {
		return nil, err
	}
	old := p.members[i]
	p.members[i] = c
	return old, nil
}

// AverageExperienceLevel returns the mean member level, or 0 for an empty party.
func (p *Party) AverageExperienceLevel() float32 {
	if len(p.members) == 0 {
		return 0
	}
	var sum uint64
	for _, c := range p.members {
		sum += uint64(c.ExperienceLevel())
	}
	return float32(sum) / float32(len(p.members))
}

// AddHitPoints heals every member by amount.
func (p *Party) AddHitPoints(amount uint32) {
	for _, c := range p.members {
		c.AddHitPoints(amount)
	}
}

// AddSkillPoints restores amount skill points to every member.
func (p *Party) AddSkillPoints(amount uint32) {
	for _, c := range p.members {
		c.AddSkillPoints(amount)
	}
}

func (p *Party) indexOf(id uint32) int {
	for i, c := range p.members {
		if c.ID() == id {
			return i
		}
	}
	return -1
}

// lookup resolves id to an index. By-id lookups are ambiguous when duplicates are allowed.
func (p *Party) lookup(id uint32) (int, error) {
	if p.allowDuplicates {
		p.logger.Warn("by-id party operation on a party that allows duplicates", zap.Uint32("character_id", id))
		return -1, fmt.Errorf("actor: party allows duplicates; cannot resolve character %d: %w", id, ErrUnknownCharacter)
	}
	i := p.indexOf(id)
	if i < 0 {
		return -1, fmt.Errorf("actor: character %d: %w", id, ErrUnknownCharacter)
	}
	return i, nil
}

func (p *Party) validIndex(index int) bool {
	if index < 0 || index >= len(p.members) {
		p.logger.Warn("party index out of range", zap.Int("index", index), zap.Int("size", len(p.members)))
		return false
	}
	return true
}
