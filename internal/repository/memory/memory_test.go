package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
)

func TestMemoryRepository_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Insert(ctx, repository.Item{Name: "bolt", Quantity: 5, Tags: []string{"hardware"}, Owners: []string{"u1"}})
	require.NoError(t, err)
	require.True(t, repository.IsValidID(created.ID))

	got, err := repo.FindByIDAndOwner(ctx, created.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = repo.FindByIDAndOwner(ctx, created.ID, "u2")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByIDAndOwner(ctx, repository.NewID(), "u1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Изменение возвращённого значения не влияет на хранилище
	got.Tags[0] = "changed"
	again, err := repo.FindByIDAndOwner(ctx, created.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"hardware"}, again.Tags)
}

func TestMemoryRepository_Scan(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, item := range []repository.Item{
		{Name: "bolt", Quantity: 5, Owners: []string{"u1"}},
		{Name: "nut", Quantity: 0, Owners: []string{"u1"}},
		{Name: "washer", Quantity: 3, Owners: []string{"u2"}},
	} {
		_, err := repo.Insert(ctx, item)
		require.NoError(t, err)
	}

	names := func(q repository.Query) []string {
		var out []string
		for item, err := range repo.Scan(ctx, q) {
			require.NoError(t, err)
			out = append(out, item.Name)
		}
		return out
	}

	require.Equal(t, []string{"bolt"}, names(repository.BuildQuery(repository.ListFilter{Owner: "u1"})))

	showEmpty := true
	require.Equal(t, []string{"bolt", "nut"}, names(repository.BuildQuery(repository.ListFilter{Owner: "u1", IncludeEmpty: &showEmpty})))
	require.Equal(t, []string{"bolt", "nut", "washer"}, names(repository.Query{}))

	t.Run("early break stops the scan", func(t *testing.T) {
		seen := 0
		for range repo.Scan(ctx, repository.Query{}) {
			seen++
			if seen == 2 {
				break
			}
		}
		require.Equal(t, 2, seen)
	})

	t.Run("cancelled context surfaces as error", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		var gotErr error
		for _, err := range repo.Scan(cctx, repository.Query{}) {
			gotErr = err
		}
		require.ErrorIs(t, gotErr, context.Canceled)
	})
}

func TestMemoryRepository_UpdateQuantityIfOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Insert(ctx, repository.Item{Name: "nut", Quantity: 3, Owners: []string{"u1"}})
	require.NoError(t, err)

	matched, err := repo.UpdateQuantityIfOwner(ctx, created.ID, "u1", 7)
	require.NoError(t, err)
	require.Equal(t, int64(1), matched)

	matched, err = repo.UpdateQuantityIfOwner(ctx, created.ID, "u1", 7)
	require.NoError(t, err)
	require.Equal(t, int64(1), matched)

	matched, err = repo.UpdateQuantityIfOwner(ctx, created.ID, "u2", 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), matched)

	got, err := repo.FindByIDAndOwner(ctx, created.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, 7, got.Quantity)
}

func TestMemoryRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Insert(ctx, repository.Item{Name: "nut", Owners: []string{"u1"}})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, created))
	require.NoError(t, repo.Remove(ctx, created), "removing twice is a no-op")

	_, err = repo.FindByIDAndOwner(ctx, created.ID, "u1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	for range repo.Scan(ctx, repository.Query{}) {
		t.Fatal("scan must be empty after remove")
	}
}
