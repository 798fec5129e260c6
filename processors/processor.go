// Package processors implements the write side mediation between an
// application and its record resources.
//
// A Processor drives the three mutating operations over one entity type.
// Every operation follows the same fixed order:
// resolve, authorize, pre-assign hook, assign, pre-save hook, persist, report.
// The capability check always precedes any mutation, and the processor never
// judges persistence itself: it only surfaces the ok verdict the resource
// reports from Save.
package processors

import (
	"context"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/payloads"
	"github.com/stewardkit/steward/reflects"
)

// NewProcessor returns a Processor that mutates T typed entities through the resource.
func NewProcessor(T steward.Entity, resource steward.Resource) *Processor {
	return &Processor{T: T, Resource: resource}
}

// Processor mediates create, update and destroy for one entity type.
//
// T is the entity prototype; only its type matters, a zero value is fine.
// Hooks are the optional interception points around assignment and
// persistence; unset slots are skipped.
type Processor struct {
	T        steward.Entity
	Resource steward.Resource

	Hooks Hooks
}

// Create instantiates a blank entity, verifies the Creatable capability,
// assigns the payload and persists through the resource.
//
// The returned ok mirrors the resource's Save verdict: a false ok with a nil
// error means the resource refused the state as invalid, and the unsaved
// entity is returned alongside so its errors can be presented back.
func (p *Processor) Create(ctx context.Context, r steward.Request, payload steward.Payload) (steward.Entity, bool, error) {
	ptr := reflects.New(p.T)

	if err := r.Authorize(creatable(ptr, r.Actor)); err != nil {
		return nil, false, err
	}

	if err := p.Hooks.run(ctx, p.Hooks.BeforeAssignOnCreate, ptr, payload, r); err != nil {
		return nil, false, err
	}

	if err := p.assign(ctx, ptr, payload); err != nil {
		return nil, false, err
	}

	if err := p.Hooks.run(ctx, p.Hooks.BeforeSaveOnCreate, ptr, payload, r); err != nil {
		return nil, false, err
	}

	ok, err := p.Resource.Save(ctx, ptr)
	return ptr, ok, err
}

// Update resolves the stored entity by the id embedded in the payload,
// verifies the Updatable capability, assigns the payload and persists.
//
// A payload without an id fails with steward.ErrIDRequired,
// a missing entity with steward.ErrNotFound.
func (p *Processor) Update(ctx context.Context, r steward.Request, payload steward.Payload) (steward.Entity, bool, error) {
	id, ok := payloads.LookupID(payload)
	if !ok {
		return nil, false, steward.ErrIDRequired
	}

	ptr := reflects.New(p.T)
	found, err := p.Resource.FindByID(ctx, ptr, id)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, steward.ErrNotFound
	}

	if err := r.Authorize(updatable(ptr, r.Actor)); err != nil {
		return nil, false, err
	}

	if err := p.Hooks.run(ctx, p.Hooks.BeforeAssignOnUpdate, ptr, payload, r); err != nil {
		return nil, false, err
	}

	if err := p.assign(ctx, ptr, payload); err != nil {
		return nil, false, err
	}

	if err := p.Hooks.run(ctx, p.Hooks.BeforeSaveOnUpdate, ptr, payload, r); err != nil {
		return nil, false, err
	}

	saved, err := p.Resource.Save(ctx, ptr)
	return ptr, saved, err
}

// Destroy resolves the stored entity by id, verifies the Destroyable
// capability and removes it through the resource.
//
// A missing entity fails with steward.ErrNotFound; resource errors during
// removal are propagated untouched.
func (p *Processor) Destroy(ctx context.Context, r steward.Request, id steward.ID) (steward.Entity, error) {
	ptr := reflects.New(p.T)

	found, err := p.Resource.FindByID(ctx, ptr, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, steward.ErrNotFound
	}

	if err := r.Authorize(destroyable(ptr, r.Actor)); err != nil {
		return nil, err
	}

	if err := p.Resource.Destroy(ctx, ptr); err != nil {
		return nil, err
	}

	return ptr, nil
}

// assign prefers the resource's own Assigner implementation when present,
// and falls back to reflection based mass-assignment otherwise.
func (p *Processor) assign(ctx context.Context, ptr steward.Entity, payload steward.Payload) error {
	if a, ok := p.Resource.(steward.Assigner); ok {
		return a.Assign(ctx, ptr, payload)
	}
	return payloads.Assign(ptr, payload)
}

func creatable(ent steward.Entity, actor steward.Actor) bool {
	c, ok := ent.(steward.Creatable)
	return ok && c.CreatableBy(actor)
}

func updatable(ent steward.Entity, actor steward.Actor) bool {
	u, ok := ent.(steward.Updatable)
	return ok && u.UpdatableBy(actor)
}

func destroyable(ent steward.Entity, actor steward.Actor) bool {
	d, ok := ent.(steward.Destroyable)
	return ok && d.DestroyableBy(actor)
}
