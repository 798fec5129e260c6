package storages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/storages"
)

func TestMemory(t *testing.T) {
	testResourceContract(t, func(tb testing.TB) resource {
		return storages.NewMemory()
	})
}

func TestMemoryNewID(t *testing.T) {
	ctx := context.Background()

	t.Run("the id generator is replaceable for non string id fields", func(t *testing.T) {
		type Counter struct {
			ID int `ext:"ID"`
			N  int
		}

		storage := storages.NewMemory()
		serial := 0
		storage.NewID = func(ctx context.Context) (steward.ID, error) {
			serial++
			return serial, nil
		}

		counter := &Counter{N: 1}
		ok, err := storage.Save(ctx, counter)
		require.Nil(t, err)
		require.True(t, ok)
		require.Equal(t, 1, counter.ID)

		var stored Counter
		found, err := storage.FindByID(ctx, &stored, 1)
		require.Nil(t, err)
		require.True(t, found)
		require.Equal(t, 1, stored.N)
	})
}

func TestMemoryTablesAreSeparatedByType(t *testing.T) {
	ctx := context.Background()

	type Other struct {
		ID   string `ext:"ID"`
		Body string
	}

	storage := storages.NewMemory()
	_, err := storage.Save(ctx, &Entry{Title: `a`})
	require.Nil(t, err)
	_, err = storage.Save(ctx, &Other{Body: `b`})
	require.Nil(t, err)

	entries, err := storage.FindAll(ctx, Entry{})
	require.Nil(t, err)
	require.Len(t, entries, 1)

	others, err := storage.FindAll(ctx, Other{})
	require.Nil(t, err)
	require.Len(t, others, 1)
}
