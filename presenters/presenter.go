// Package presenters implements the read side mediation between an
// application and its record resources.
//
// A Presenter resolves one entity or accepts an already resolved collection,
// verifies the access capability the operation requires, and hands back the
// entities decorated with the request they were resolved under, so the
// formatting helpers can reach the actor and the view context later without
// re-threading parameters through every call site.
//
// Nothing is ever decorated or returned before its capability check passed,
// and presenting never persists.
package presenters

import (
	"context"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/payloads"
	"github.com/stewardkit/steward/reflects"
)

// NewPresenter returns a Presenter that resolves T typed entities from the finder.
func NewPresenter(T steward.Entity, finder steward.Finder) *Presenter {
	return &Presenter{T: T, Resource: finder}
}

// Presenter mediates read access to one entity type.
//
// T is the entity prototype; only its type matters, a zero value is fine.
// Resource is where single entities are resolved from by id.
type Presenter struct {
	T        steward.Entity
	Resource steward.Finder
}

// PresentByID resolves the entity by id and returns it decorated.
//
// The entity must grant the Viewable capability to the request's actor,
// otherwise the call fails with steward.ErrNotAuthorized and nothing is
// returned. A missing entity fails with steward.ErrNotFound.
func (p *Presenter) PresentByID(ctx context.Context, r steward.Request, id steward.ID) (*Record, error) {
	ptr := reflects.New(p.T)

	found, err := p.Resource.FindByID(ctx, ptr, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, steward.ErrNotFound
	}

	return p.Present(ctx, r, ptr)
}

// PresentNew builds a not-yet-stored entity from the payload and returns it
// decorated. It is meant for rendering creation forms; no persistence occurs.
func (p *Presenter) PresentNew(ctx context.Context, r steward.Request, payload steward.Payload) (*Record, error) {
	ptr := reflects.New(p.T)

	if err := payloads.Assign(ptr, payload); err != nil {
		return nil, err
	}

	return p.Present(ctx, r, ptr)
}

// Present decorates an already resolved entity after verifying that the
// request's actor may view it.
func (p *Presenter) Present(ctx context.Context, r steward.Request, ent steward.Entity) (*Record, error) {
	if err := r.Authorize(viewable(ent, r.Actor)); err != nil {
		return nil, err
	}

	return &Record{Entity: ent, Request: r}, nil
}

// PresentAll decorates an ordered collection of already resolved entities.
//
// A listing is a statement about the entity type rather than about any single
// stored value, so the Listable capability is checked once against the
// presenter's prototype. An empty collection with a granted listing returns
// an empty decorated collection without error.
func (p *Presenter) PresentAll(ctx context.Context, r steward.Request, ents []steward.Entity) (Records, error) {
	if err := r.Authorize(listable(p.T, r.Actor)); err != nil {
		return nil, err
	}

	records := make(Records, 0, len(ents))
	for _, ent := range ents {
		records = append(records, &Record{Entity: ent, Request: r})
	}
	return records, nil
}

func viewable(ent steward.Entity, actor steward.Actor) bool {
	v, ok := ent.(steward.Viewable)
	return ok && v.ViewableBy(actor)
}

func listable(T steward.Entity, actor steward.Actor) bool {
	l, ok := T.(steward.Listable)
	return ok && l.ListableBy(actor)
}
