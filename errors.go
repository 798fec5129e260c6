package steward

import "github.com/stewardkit/steward/consterror"

const (
	// ErrNotAuthorized is returned whenever an access capability predicate
	// refuses the actor, before any mutation took place.
	// It is not recoverable at this layer and is meant to propagate up to
	// whatever renders access denial in the surrounding application.
	ErrNotAuthorized consterror.Error = `steward: actor is not authorized for the requested operation`

	// ErrNotFound is returned when an entity cannot be resolved by id.
	ErrNotFound consterror.Error = `steward: entity not found`

	// ErrIDRequired is returned when an update payload carries no external id.
	ErrIDRequired consterror.Error = `steward: payload doesn't include the external entity id`
)
