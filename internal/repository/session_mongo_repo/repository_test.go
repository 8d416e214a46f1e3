package session_mongo_repo

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	col := client.Database("bookshelf_test").Collection(Collection)
	_, err = col.DeleteMany(ctx, bson.M{})
	require.NoError(t, err)

	return col
}

func TestRepository_Mongo(t *testing.T) {
	col := newCollection(t)
	r := NewSessionRepository(col)
	ctx := context.Background()

	_, err := r.GetSession(ctx, "alice")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, r.UpsertSession(ctx, &model.Session{UserID: "alice", RefreshToken: "r1", ExpiresAt: 1}))
	require.NoError(t, r.UpsertSession(ctx, &model.Session{UserID: "alice", RefreshToken: "r2", ExpiresAt: 2}))

	got, err := r.GetSession(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, &model.Session{UserID: "alice", RefreshToken: "r2", ExpiresAt: 2}, got)

	require.NoError(t, r.DeleteSession(ctx, "alice"))
	require.NoError(t, r.DeleteSession(ctx, "alice"))
	_, err = r.GetSession(ctx, "alice")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRepository_Mongo_ConcurrentUpsert(t *testing.T) {
	col := newCollection(t)
	r := NewSessionRepository(col)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, r.UpsertSession(ctx, &model.Session{UserID: "alice", RefreshToken: fmt.Sprintf("r%d", i)}))
		}(i)
	}
	wg.Wait()

	n, err := col.CountDocuments(ctx, bson.M{"_id": "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
