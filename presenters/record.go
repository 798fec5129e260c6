package presenters

import (
	"github.com/stewardkit/steward"
)

// Record is a decorated entity: the entity itself together with the request
// it was presented under. The request is a per-record copy, two records never
// share one even within the same listing.
type Record struct {
	Entity  steward.Entity
	Request steward.Request
}

// Records is an ordered decorated collection.
type Records []*Record

// Entities returns the bare entities of the collection, in presentation order.
func (rs Records) Entities() []steward.Entity {
	ents := make([]steward.Entity, 0, len(rs))
	for _, r := range rs {
		ents = append(ents, r.Entity)
	}
	return ents
}
