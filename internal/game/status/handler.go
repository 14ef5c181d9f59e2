package status

//go:generate mockgen -destination=statusmocks/mock_handler.go -package=statusmocks -source=handler.go

import (
	"errors"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
)

// ErrMissingFunction is returned by a PassiveHandler whose backing definition
// lacks the requested function.
var ErrMissingFunction = errors.New("status: handler function not defined")

// Target is the view of an actor that passive handlers act upon.
type Target interface {
	ActorID() uint32
	ActorName() string
	StatBase(s attribute.Stat) float32
	StatModifier(s attribute.Stat) float32
	SetStatModifier(s attribute.Stat, v float32)
	ElementalBase(e attribute.Element) float32
	ElementalModifier(e attribute.Element) float32
	SetElementalModifier(e attribute.Element, v float32)
}

// PassiveHandler applies or removes one passive status effect.
type PassiveHandler interface {
	// ApplyPassive installs the effect at the given non-neutral intensity.
	ApplyPassive(target Target, intensity Intensity) error
	// RemovePassive clears the effect.
	RemovePassive(target Target) error
}

// Handlers looks up the passive handler for a status type.
type Handlers interface {
	// Handler returns the handler for t and whether one is registered.
	Handler(t Type) (PassiveHandler, bool)
}

// Table is a map-backed Handlers implementation.
type Table map[Type]PassiveHandler

// Handler returns the handler registered for t.
func (tb Table) Handler(t Type) (PassiveHandler, bool) {
	h, ok := tb[t]
	return h, ok && h != nil
}

// Funcs adapts a pair of plain functions to PassiveHandler. A nil function
// reports ErrMissingFunction when invoked.
type Funcs struct {
	Apply  func(target Target, intensity Intensity) error
	Remove func(target Target) error
}

// ApplyPassive calls f.Apply.
func (f Funcs) ApplyPassive(target Target, intensity Intensity) error {
	if f.Apply == nil {
		return ErrMissingFunction
	}
	return f.Apply(target, intensity)
}

// RemovePassive calls f.Remove.
func (f Funcs) RemovePassive(target Target) error {
	if f.Remove == nil {
		return ErrMissingFunction
	}
	return f.Remove(target)
}
