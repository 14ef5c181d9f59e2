package inventory

import "fmt"

// Source resolves object ids to definitions and mints object instances.
type Source interface {
	Weapon(id uint32) (*WeaponDef, bool)
	Armor(id uint32) (*ArmorDef, bool)
	NewObject(id uint32, count uint32) (Object, error)
}

// Registry holds all loaded weapon, armor and item definitions indexed by ID.
type Registry struct {
	weapons map[uint32]*WeaponDef
	armors  map[uint32]*ArmorDef
	items   map[uint32]*ItemDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		weapons: make(map[uint32]*WeaponDef),
		armors:  make(map[uint32]*ArmorDef),
		items:   make(map[uint32]*ItemDef),
	}
}

// RegisterWeapon adds w to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns (w, true); returns error if w.ID already registered.
func (r *Registry) RegisterWeapon(w *WeaponDef) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: weapon ID %d already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// RegisterArmor adds a to the registry.
//
// Precondition:  a must not be nil.
// Postcondition: Armor(a.ID) returns (a, true); returns error if a.ID already registered.
func (r *Registry) RegisterArmor(a *ArmorDef) error {
	if _, exists := r.armors[a.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterArmor: armor ID %d already registered", a.ID)
	}
	r.armors[a.ID] = a
	return nil
}

// RegisterItem adds d to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Item(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) RegisterItem(d *ItemDef) error {
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterItem: item ID %d already registered", d.ID)
	}
	r.items[d.ID] = d
	return nil
}

// Weapon returns the WeaponDef for id and whether it was found.
func (r *Registry) Weapon(id uint32) (*WeaponDef, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// Armor returns the ArmorDef for id and whether it was found.
func (r *Registry) Armor(id uint32) (*ArmorDef, bool) {
	a, ok := r.armors[id]
	return a, ok
}

// Item returns the ItemDef for id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Item(id uint32) (*ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

// NewObject mints a fresh instance of the object with the given id.
//
// Precondition: count > 0.
// Postcondition: returns an error if id is not registered under its id-range type.
func (r *Registry) NewObject(id uint32, count uint32) (Object, error) {
	if count == 0 {
		return Object{}, fmt.Errorf("inventory: NewObject: count must be > 0 for object %d", id)
	}
	var name string
	switch t := ObjectTypeForID(id); {
	case t == ObjectItem:
		d, ok := r.items[id]
		if !ok {
			return Object{}, fmt.Errorf("inventory: NewObject: item %d not registered", id)
		}
		name = d.Name
	case t == ObjectWeapon:
		d, ok := r.weapons[id]
		if !ok {
			return Object{}, fmt.Errorf("inventory: NewObject: weapon %d not registered", id)
		}
		name = d.Name
	case t.IsArmor():
		d, ok := r.armors[id]
		if !ok {
			return Object{}, fmt.Errorf("inventory: NewObject: armor %d not registered", id)
		}
		name = d.Name
	default:
		return Object{}, fmt.Errorf("inventory: NewObject: id %d is not a valid object id", id)
	}
	return newObject(id, name, count), nil
}

// Counts returns the number of registered weapons, armors and items.
func (r *Registry) Counts() (weapons, armors, items int) {
	return len(r.weapons), len(r.armors), len(r.items)
}
