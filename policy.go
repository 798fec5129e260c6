package steward

// Access capabilities are boolean predicates an entity carries about itself.
// The mediators discover them through type assertion, so each concrete entity
// type decides which operations it exposes and to whom. An entity that does
// not implement the capability required by an operation is not authorized
// for that operation.

// Viewable reports whether a single resolved entity may be shown to the actor.
type Viewable interface {
	ViewableBy(actor Actor) bool
}

// Listable reports whether entities of this type may be listed for the actor.
// Unlike the other capabilities it is a statement about the type, not about
// one stored value, so it is checked once per listing against the mediator's
// entity prototype.
type Listable interface {
	ListableBy(actor Actor) bool
}

// Creatable reports whether the actor may persist this not-yet-stored entity.
type Creatable interface {
	CreatableBy(actor Actor) bool
}

// Updatable reports whether the actor may overwrite the stored entity.
type Updatable interface {
	UpdatableBy(actor Actor) bool
}

// Destroyable reports whether the actor may remove the stored entity.
type Destroyable interface {
	DestroyableBy(actor Actor) bool
}
