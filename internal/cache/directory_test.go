package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestDirectory_FallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDirectoryRepo(memory.NewStore())
	d := NewDirectory(repo, unreachableClient(t), time.Minute, newTestLogger(t))

	room := &domain.Room{ID: "r1", Name: "Studio", Capacity: 10, CreatedAt: time.Now().UTC()}
	require.NoError(t, d.CreateRoom(ctx, room))

	got, err := d.GetRoom(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Studio", got.Name)
}

func TestDirectory_PropagatesNotFound(t *testing.T) {
	d := NewDirectory(memory.NewDirectoryRepo(memory.NewStore()), unreachableClient(t), time.Minute, newTestLogger(t))

	_, err := d.GetMember(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestDirectory_ListsPassThrough(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDirectoryRepo(memory.NewStore())
	d := NewDirectory(repo, unreachableClient(t), time.Minute, newTestLogger(t))

	require.NoError(t, d.CreateTrainer(ctx, &domain.Trainer{ID: "t1", FirstName: "Ann", LastName: "Lee", Email: "ann@gym.test"}))

	trainers, err := d.ListTrainers(ctx)
	require.NoError(t, err)
	assert.Len(t, trainers, 1)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "gymops:member:1", memberKey("1"))
	assert.Equal(t, "gymops:trainer:1", trainerKey("1"))
	assert.Equal(t, "gymops:room:1", roomKey("1"))
}
