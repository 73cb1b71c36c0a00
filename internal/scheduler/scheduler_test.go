package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/GymOps/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_CompletesPast(t *testing.T) {
	completer := mocks.NewMockSessionCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 50*time.Millisecond, log)

	completer.EXPECT().CompletePast(mock.Anything, mock.AnythingOfType("time.Time")).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_Tick_PassesCurrentTime(t *testing.T) {
	completer := mocks.NewMockSessionCompleter(t)
	log := newTestLogger(t)

	s := New(completer, time.Hour, log)

	before := time.Now().UTC()
	var got time.Time
	completer.EXPECT().CompletePast(mock.Anything, mock.Anything).
		Run(func(_ context.Context, now time.Time) { got = now }).
		Return(0, nil)

	s.tick(context.Background())

	assert.False(t, got.Before(before))
	assert.False(t, got.After(time.Now().UTC()))
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	completer := mocks.NewMockSessionCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 50*time.Millisecond, log)

	completer.EXPECT().CompletePast(mock.Anything, mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	completer := mocks.NewMockSessionCompleter(t)
	log := newTestLogger(t)

	s := New(completer, time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	completer := mocks.NewMockSessionCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 30*time.Millisecond, log)

	completer.EXPECT().CompletePast(mock.Anything, mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 140*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 3)
}
