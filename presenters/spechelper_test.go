package presenters_test

import (
	"github.com/stewardkit/steward"
)

// User is the actor of the specs.
type User struct {
	Name  string
	Admin bool
}

// Note is the mediated entity of the specs.
// Capabilities: anyone listed as owner or an admin sees and changes a note,
// everyone sees public notes, and any known user may list or create.
type Note struct {
	ID    string `ext:"ID"`
	Owner string
	Title string

	Public bool
}

func (n Note) ViewableBy(actor steward.Actor) bool {
	if n.Public {
		return true
	}
	return n.ownedOrAdmin(actor)
}

func (n Note) ListableBy(actor steward.Actor) bool {
	_, ok := actor.(User)
	return ok
}

func (n Note) ownedOrAdmin(actor steward.Actor) bool {
	user, ok := actor.(User)
	if !ok {
		return false
	}
	return user.Admin || user.Name == n.Owner
}

// Secret is an entity without any capability; nobody may do anything with it.
type Secret struct {
	ID   string `ext:"ID"`
	Body string
}
