package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"snapshare/internal/domain/model"
)

const (
	mongoUser     = "testuser"
	mongoPassword = "testpass"
	mongoDBName   = "testdb"
)

func setupDatabase(t *testing.T) *Database {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": mongoUser,
			"MONGO_INITDB_ROOT_PASSWORD": mongoPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start MongoDB container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("Failed to get MongoDB endpoint: %v", err)
	}

	db, err := Connect(Config{
		URI:               fmt.Sprintf("mongodb://%s:%s@%s", mongoUser, mongoPassword, endpoint),
		DBName:            mongoDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func TestSubmissionStore_AppendAndList(t *testing.T) {
	db := setupDatabase(t)
	store := NewSubmissionStore(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, store.Append(ctx, &model.QuizSubmission{
		Data:        map[string]any{"answer": "Paris"},
		SubmittedAt: now.Add(-time.Hour),
	}))
	require.NoError(t, store.Append(ctx, &model.QuizSubmission{
		Data:        map[string]any{"answer": "Rome"},
		SubmittedAt: now,
	}))

	subs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	// Newest first.
	assert.Equal(t, "Rome", subs[0].Data["answer"])
	assert.Equal(t, "Paris", subs[1].Data["answer"])
}

func TestSubmissionStore_ListEmpty(t *testing.T) {
	db := setupDatabase(t)
	store := NewSubmissionStore(db)

	subs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subs)
}
