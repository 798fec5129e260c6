package processors_test

import (
	"github.com/stewardkit/steward"
)

// User is the actor of the specs.
type User struct {
	Name  string
	Admin bool
}

// Note is the mediated entity of the specs.
// Any known user may create notes, only the owner or an admin may change
// or remove one.
type Note struct {
	ID    string `ext:"ID"`
	Owner string
	Title string
}

func (n Note) CreatableBy(actor steward.Actor) bool {
	_, ok := actor.(User)
	return ok
}

func (n Note) UpdatableBy(actor steward.Actor) bool {
	return n.ownedOrAdmin(actor)
}

func (n Note) DestroyableBy(actor steward.Actor) bool {
	return n.ownedOrAdmin(actor)
}

func (n Note) ownedOrAdmin(actor steward.Actor) bool {
	user, ok := actor.(User)
	if !ok {
		return false
	}
	return user.Admin || user.Name == n.Owner
}
