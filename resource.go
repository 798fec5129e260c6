package steward

import (
	"context"
)

// Finder resolves a single entity by its external id.
type Finder interface {
	// FindByID will link the entity that is found in the resource to the received ptr,
	// and report back whether it succeeded finding the entity in the resource.
	// It also reports if there was an unexpected exception during the execution.
	// It is an intentional decision to not use error to represent the "not found" case,
	// but to tell this information explicitly in the form of a return bool value.
	FindByID(ctx context.Context, ptr Entity, id ID) (found bool, err error)
}

// Saver persists the current state of an entity.
type Saver interface {
	// Save takes a ptr to an entity and stores its state into the resource.
	// When the entity has no external id yet, the resource creates it and
	// links the generated id onto the entity's ext:"ID" field.
	//
	// The ok return value surfaces the resource's own validation verdict:
	// ok == false with a nil error means the resource refused to persist the
	// received state, and the caller is expected to present the invalid entity
	// back to its user rather than treat the call as failed.
	Save(ctx context.Context, ptr Entity) (ok bool, err error)
}

// Destroyer removes an entity from the resource.
type Destroyer interface {
	Destroy(ctx context.Context, ptr Entity) error
}

// Lister returns every stored entity of the received prototype's type.
// Resources may implement it to feed listings; the mediators themselves
// never require it, a listing is whatever ordered collection the caller hands in.
type Lister interface {
	FindAll(ctx context.Context, T Entity) ([]Entity, error)
}

// Assigner is an optional interface a Resource can implement to take over
// attribute mass-assignment from the default reflection based payloads.Assign.
// Resources that map entities onto an external system with its own
// coercion rules are the intended implementers.
type Assigner interface {
	Assign(ctx context.Context, ptr Entity, p Payload) error
}

// Resource is the record provider contract the write mediator requires.
// The read mediator only needs the Finder part of it.
type Resource interface {
	Finder
	Saver
	Destroyer
}
