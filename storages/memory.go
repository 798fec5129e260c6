// Package storages provides the record resources the mediators can be wired
// with out of the box: a map backed Memory storage for development and
// testing, and a BoltDB backed Local storage for single process persistence.
package storages

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/extid"
	"github.com/stewardkit/steward/reflects"
)

// NewMemory returns an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{db: make(map[string]memoryTable)}
}

// Memory is a map backed resource implementation.
// Entities are grouped into tables by their symbolic type name and stored as
// dereferenced copies, so no caller held pointer can mutate stored state.
type Memory struct {
	// NewID generates the external id for entities saved without one.
	// It defaults to a random url-safe string; set it when the entity's
	// id field is not a string.
	NewID func(ctx context.Context) (steward.ID, error)

	mutex sync.RWMutex
	db    map[string]memoryTable
}

type memoryTable map[steward.ID]steward.Entity

func (storage *Memory) Save(ctx context.Context, ptr steward.Entity) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	storage.mutex.Lock()
	defer storage.mutex.Unlock()

	id, ok := extid.Lookup(ptr)
	if !ok {
		newID, err := storage.newID(ctx)
		if err != nil {
			return false, err
		}
		if err := extid.Set(ptr, newID); err != nil {
			return false, err
		}
		id = newID
	} else if _, found := storage.tableFor(ptr)[id]; !found {
		return false, steward.ErrNotFound
	}

	storage.tableFor(ptr)[id] = reflects.BaseValueOf(ptr).Interface()
	return true, nil
}

func (storage *Memory) FindByID(ctx context.Context, ptr steward.Entity, id steward.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	storage.mutex.RLock()
	defer storage.mutex.RUnlock()

	ent, found := storage.viewFor(ptr)[id]
	if !found {
		return false, nil
	}

	return true, reflects.Link(ent, ptr)
}

func (storage *Memory) FindAll(ctx context.Context, T steward.Entity) ([]steward.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	storage.mutex.RLock()
	defer storage.mutex.RUnlock()

	table := storage.viewFor(T)
	ents := make([]steward.Entity, 0, len(table))
	for _, ent := range table {
		ents = append(ents, ent)
	}
	return ents, nil
}

func (storage *Memory) Destroy(ctx context.Context, ptr steward.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	storage.mutex.Lock()
	defer storage.mutex.Unlock()

	id, ok := extid.Lookup(ptr)
	if !ok {
		return fmt.Errorf(`%T doesn't have a linked external id`, ptr)
	}

	table := storage.tableFor(ptr)
	if _, found := table[id]; !found {
		return steward.ErrNotFound
	}

	delete(table, id)
	return nil
}

// viewFor is the read only counterpart of tableFor; it never grows the db map,
// so it is safe under the read lock.
func (storage *Memory) viewFor(ent steward.Entity) memoryTable {
	return storage.db[reflects.SymbolicName(ent)]
}

func (storage *Memory) tableFor(ent steward.Entity) memoryTable {
	name := reflects.SymbolicName(ent)
	if _, ok := storage.db[name]; !ok {
		storage.db[name] = make(memoryTable)
	}
	return storage.db[name]
}

func (storage *Memory) newID(ctx context.Context) (steward.ID, error) {
	if storage.NewID != nil {
		return storage.NewID(ctx)
	}
	return randID()
}

func randID() (string, error) {
	b := make([]byte, 32)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.URLEncoding.EncodeToString(b), nil
}
