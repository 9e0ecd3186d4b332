package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/HaliTran/wondertix/internal/scheduler/mocks"
	"github.com/shopspring/decimal"
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

func TestScheduler_Tick_CancelsStale(t *testing.T) {
	sweeper := mocks.NewMockOrderSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, 30*time.Minute, log)

	cancelled := []*domain.Order{
		{ID: 1, ContactID: 9, Total: decimal.NewFromInt(40)},
	}
	sweeper.EXPECT().CancelStale(mock.Anything, 30*time.Minute).Return(cancelled, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	sweeper := mocks.NewMockOrderSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, 30*time.Minute, log)

	sweeper.EXPECT().CancelStale(mock.Anything, 30*time.Minute).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockOrderSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, time.Second, 30*time.Minute, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sweeper := mocks.NewMockOrderSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 30*time.Millisecond, 30*time.Minute, log)

	sweeper.EXPECT().CancelStale(mock.Anything, 30*time.Minute).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(sweeper.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
