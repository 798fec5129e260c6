// Package steward is a convention library for mediating reads and writes
// between an application and its record resources.
//
// The package provides two parallel mediator skeletons.
// The read side (presenters.Presenter) resolves records and decorates them
// for display, the write side (processors.Processor) drives create, update
// and destroy. Both enforce access-capability predicates that the record
// itself carries, so the surrounding application layer stays thin:
// it hands over an actor and a payload, and receives either a decorated
// record or a refusal.
//
// All querying, validation and persistence belongs to the Resource the
// mediators are wired with. This package only owns the ordering:
// resolve, authorize, run hooks, mutate, persist, report.
package steward

type (
	// Entity is a business object of the application.
	// Entity scope must be free from anything related to other software layers
	// implementation knowledge such as SQL or HTTP request objects.
	Entity = interface{}

	// Actor is the identity on whose behalf an operation is performed.
	// It is opaque to this package and only ever handed to the entity's
	// access-capability predicates.
	Actor = interface{}

	// ID is the external identifier of an Entity within its Resource.
	ID = interface{}

	// View is an opaque presentation context, passed through untouched to the
	// formatting helpers.
	View = interface{}

	// Payload is a mapping from exported field name to new value,
	// supplied by the caller for create and update.
	// It is transient and must not be retained beyond the single call.
	Payload = map[string]interface{}
)
