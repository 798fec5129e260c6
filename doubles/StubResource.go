// Package doubles holds handwritten test doubles for the resource interfaces.
package doubles

import (
	"context"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/storages"
)

// NewStubResource returns a StubResource that behaves like an empty in-memory
// storage until one of its Stub* funcs is set.
func NewStubResource() *StubResource {
	return &StubResource{Memory: storages.NewMemory()}
}

// StubResource is a resource double with injectable behavior.
// Any unset Stub* func falls through to the embedded Memory storage,
// so only the code path under test needs stubbing.
type StubResource struct {
	*storages.Memory

	StubFindByID func(ctx context.Context, ptr steward.Entity, id steward.ID) (bool, error)
	StubSave     func(ctx context.Context, ptr steward.Entity) (bool, error)
	StubDestroy  func(ctx context.Context, ptr steward.Entity) error
}

func (s *StubResource) FindByID(ctx context.Context, ptr steward.Entity, id steward.ID) (bool, error) {
	if s.StubFindByID != nil {
		return s.StubFindByID(ctx, ptr, id)
	}
	return s.Memory.FindByID(ctx, ptr, id)
}

func (s *StubResource) Save(ctx context.Context, ptr steward.Entity) (bool, error) {
	if s.StubSave != nil {
		return s.StubSave(ctx, ptr)
	}
	return s.Memory.Save(ctx, ptr)
}

func (s *StubResource) Destroy(ctx context.Context, ptr steward.Entity) error {
	if s.StubDestroy != nil {
		return s.StubDestroy(ctx, ptr)
	}
	return s.Memory.Destroy(ctx, ptr)
}
