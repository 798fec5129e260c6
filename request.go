package steward

// Request is the ephemeral, call scoped bundle the mediators thread through
// a single operation: the actor on whose behalf it runs, the opaque view
// context the formatting helpers will need, and the operation options.
//
// A Request is a value; the mediators copy it onto every record they decorate,
// so no two records ever share one, and nothing of it outlives the call.
type Request struct {
	Actor Actor
	View  View

	Options Options
}

// Options hold the per-operation switches of a mediator call.
type Options struct {
	// SkipAuthorization disables the capability check for this call.
	// The zero value enforces. Only trusted internal call paths may set it;
	// it exists for flows like system jobs acting without a user.
	SkipAuthorization bool
}

// Authorize is the single choke point every capability verdict passes through.
// A false verdict becomes ErrNotAuthorized unless this request opted out of
// enforcement.
func (r Request) Authorize(allowed bool) error {
	if r.Options.SkipAuthorization {
		return nil
	}
	if !allowed {
		return ErrNotAuthorized
	}
	return nil
}
