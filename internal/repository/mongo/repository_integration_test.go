//go:build integration

package mongo

import (
	"context"
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
)

func setupRepository(t *testing.T) (*Repository, *mongo.Collection) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Поднимаем MongoDB контейнер без auth
	mongoC, err := mongodb.RunContainer(ctx, tc.WithImage("mongo:6"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, mongoC.Terminate(context.Background())) })

	uri, err := mongoC.ConnectionString(ctx)
	require.NoError(t, err)

	// Ждём готовности MongoDB (connect+ping с retry)
	var client *mongo.Client
	for i := 0; i < 20; i++ {
		client, err = Connect(ctx, uri)
		if err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	require.NoError(t, err, "MongoDB did not become ready in time")
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	repo := NewRepository(client, "warehouse", DefaultCollection)
	col := client.Database("warehouse").Collection(DefaultCollection)
	_, _ = col.DeleteMany(ctx, bson.M{})

	return repo, col
}

func TestRepository_Integration(t *testing.T) {
	repo, col := setupRepository(t)
	ctx := context.Background()

	bolt, err := repo.Insert(ctx, repository.Item{Name: "bolt", Quantity: 5, Tags: []string{"hardware"}, Owners: []string{"u1"}})
	require.NoError(t, err)
	require.True(t, repository.IsValidID(bolt.ID))

	nut, err := repo.Insert(ctx, repository.Item{Name: "nut", Quantity: 0, Owners: []string{"u1"}})
	require.NoError(t, err)
	require.Equal(t, []string{}, nut.Tags)

	_, err = repo.Insert(ctx, repository.Item{Name: "washer", Quantity: 9, Tags: []string{"hardware", "small"}, Owners: []string{"u2"}})
	require.NoError(t, err)

	t.Run("find respects owner", func(t *testing.T) {
		got, err := repo.FindByIDAndOwner(ctx, bolt.ID, "u1")
		require.NoError(t, err)
		require.Equal(t, "bolt", got.Name)
		require.Equal(t, 5, got.Quantity)

		_, err = repo.FindByIDAndOwner(ctx, bolt.ID, "u2")
		require.ErrorIs(t, err, repository.ErrNotFound)

		_, err = repo.FindByIDAndOwner(ctx, "bad-id", "u1")
		require.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("scan applies list filter", func(t *testing.T) {
		names := scanNames(t, repo.Scan(ctx, repository.BuildQuery(repository.ListFilter{Owner: "u1"})))
		require.Equal(t, []string{"bolt"}, names)

		showEmpty := true
		names = scanNames(t, repo.Scan(ctx, repository.BuildQuery(repository.ListFilter{Owner: "u1", IncludeEmpty: &showEmpty})))
		require.ElementsMatch(t, []string{"bolt", "nut"}, names)

		names = scanNames(t, repo.Scan(ctx, repository.Query{}))
		require.Len(t, names, 3)
	})

	t.Run("scan can stop early", func(t *testing.T) {
		count := 0
		for _, err := range repo.Scan(ctx, repository.Query{}) {
			require.NoError(t, err)
			count++
			break
		}
		require.Equal(t, 1, count)
	})

	t.Run("update quantity reports matched count", func(t *testing.T) {
		matched, err := repo.UpdateQuantityIfOwner(ctx, nut.ID, "u1", 7)
		require.NoError(t, err)
		require.Equal(t, int64(1), matched)

		matched, err = repo.UpdateQuantityIfOwner(ctx, nut.ID, "u1", 7)
		require.NoError(t, err)
		require.Equal(t, int64(1), matched, "same value still matches")

		matched, err = repo.UpdateQuantityIfOwner(ctx, nut.ID, "u2", 1)
		require.NoError(t, err)
		require.Equal(t, int64(0), matched)

		var doc ItemDocument
		oid, err := primitive.ObjectIDFromHex(nut.ID)
		require.NoError(t, err)
		require.NoError(t, col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc))
		require.Equal(t, 7, doc.Quantity)
	})

	t.Run("remove deletes document", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, bolt))
		_, err := repo.FindByIDAndOwner(ctx, bolt.ID, "u1")
		require.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func scanNames(t *testing.T, seq iter.Seq2[repository.Item, error]) []string {
	t.Helper()
	var names []string
	for item, err := range seq {
		require.NoError(t, err)
		names = append(names, item.Name)
	}
	slices.Sort(names)
	return names
}
