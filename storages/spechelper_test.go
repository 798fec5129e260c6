package storages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/fixtures"
)

// Entry is the stored entity of the storage specs.
type Entry struct {
	ID    string `ext:"ID"`
	Title string
	Count int
}

type resource interface {
	steward.Resource
	steward.Lister
}

// testResourceContract runs the behavior every storage implementation must
// share. The unknown ids it probes with are numeric strings so sequence based
// storages treat them as well formed.
func testResourceContract(t *testing.T, subject func(tb testing.TB) resource) {
	ctx := context.Background()

	t.Run("save links a generated id and the entity becomes retrievable", func(t *testing.T) {
		storage := subject(t)

		entry := &Entry{Title: `a`, Count: 1}
		ok, err := storage.Save(ctx, entry)
		require.Nil(t, err)
		require.True(t, ok)
		require.NotEqual(t, ``, entry.ID)

		var stored Entry
		found, err := storage.FindByID(ctx, &stored, entry.ID)
		require.Nil(t, err)
		require.True(t, found)
		require.Equal(t, *entry, stored)
	})

	t.Run("the stored state is detached from the caller's pointer", func(t *testing.T) {
		storage := subject(t)

		entry := &Entry{Title: `a`}
		_, err := storage.Save(ctx, entry)
		require.Nil(t, err)

		entry.Title = `mutated after save`

		var stored Entry
		found, err := storage.FindByID(ctx, &stored, entry.ID)
		require.Nil(t, err)
		require.True(t, found)
		require.Equal(t, `a`, stored.Title)
	})

	t.Run("save with a linked id overwrites the stored state", func(t *testing.T) {
		storage := subject(t)

		entry := &Entry{Title: `a`}
		_, err := storage.Save(ctx, entry)
		require.Nil(t, err)

		entry.Title = `b`
		ok, err := storage.Save(ctx, entry)
		require.Nil(t, err)
		require.True(t, ok)

		var stored Entry
		found, err := storage.FindByID(ctx, &stored, entry.ID)
		require.Nil(t, err)
		require.True(t, found)
		require.Equal(t, `b`, stored.Title)
	})

	t.Run("save with an unknown preset id is a not found failure", func(t *testing.T) {
		storage := subject(t)

		_, err := storage.Save(ctx, &Entry{ID: `42424242`, Title: `x`})
		require.Equal(t, steward.ErrNotFound, err)
	})

	t.Run("find by an unknown id reports absence without error", func(t *testing.T) {
		storage := subject(t)

		found, err := storage.FindByID(ctx, &Entry{}, `42424242`)
		require.Nil(t, err)
		require.False(t, found)
	})

	t.Run("destroy removes the entity", func(t *testing.T) {
		storage := subject(t)

		entry := &Entry{Title: `a`}
		_, err := storage.Save(ctx, entry)
		require.Nil(t, err)

		require.Nil(t, storage.Destroy(ctx, entry))

		found, err := storage.FindByID(ctx, &Entry{}, entry.ID)
		require.Nil(t, err)
		require.False(t, found)
	})

	t.Run("destroy of an unknown id is a not found failure", func(t *testing.T) {
		storage := subject(t)

		err := storage.Destroy(ctx, &Entry{ID: `42424242`})
		require.Equal(t, steward.ErrNotFound, err)
	})

	t.Run("find all returns every stored entity", func(t *testing.T) {
		storage := subject(t)

		a := &Entry{Title: `a`}
		b := &Entry{Title: `b`}
		_, err := storage.Save(ctx, a)
		require.Nil(t, err)
		_, err = storage.Save(ctx, b)
		require.Nil(t, err)

		ents, err := storage.FindAll(ctx, Entry{})
		require.Nil(t, err)
		require.ElementsMatch(t, []steward.Entity{*a, *b}, ents)
	})

	t.Run("randomly populated entities survive the round trip", func(t *testing.T) {
		storage := subject(t)

		entry := fixtures.New(Entry{}).(*Entry)
		_, err := storage.Save(ctx, entry)
		require.Nil(t, err)

		var stored Entry
		found, err := storage.FindByID(ctx, &stored, entry.ID)
		require.Nil(t, err)
		require.True(t, found)
		require.Equal(t, *entry, stored)
	})
}
