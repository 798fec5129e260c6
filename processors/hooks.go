package processors

import (
	"context"

	"github.com/stewardkit/steward"
)

// Hook is an interception point around assignment and persistence.
// It receives the entity under mutation, the payload that is about to be or
// was just assigned, and the request of the call. A non nil error aborts the
// operation before the resource is touched.
type Hook func(ctx context.Context, ptr steward.Entity, payload steward.Payload, r steward.Request) error

// Hooks are the ordered extension points of a Processor.
// They fire in a fixed order and only on the operation they are named after:
// BeforeAssign* after the capability check and before mass-assignment,
// BeforeSave* after mass-assignment and before Save.
// Nil slots are skipped. This is the only extension mechanism the write
// mediation offers; validation, normalization and side-effect scheduling all
// hang off these four slots.
type Hooks struct {
	BeforeAssignOnCreate Hook
	BeforeSaveOnCreate   Hook
	BeforeAssignOnUpdate Hook
	BeforeSaveOnUpdate   Hook
}

func (h Hooks) run(ctx context.Context, hook Hook, ptr steward.Entity, payload steward.Payload, r steward.Request) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, ptr, payload, r)
}
