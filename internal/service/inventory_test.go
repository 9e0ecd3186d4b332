package service

import (
	"context"
	"testing"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/HaliTran/wondertix/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

// slotIDs builds ascending slot ids starting at base.
func slotIDs(base int64, n int) []int64 {
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, base+int64(i))
	}
	return ids
}

func restriction(id, typeID int64, price float64, limit, sold int) *domain.LoadedRestriction {
	return &domain.LoadedRestriction{
		TicketRestriction: domain.TicketRestriction{
			ID:              id,
			EventInstanceID: 1,
			TicketTypeID:    typeID,
			Price:           decimal.NewFromFloat(price),
			ConcessionPrice: decimal.Zero,
			TicketLimit:     limit,
		},
		UnsoldSlots: slotIDs(id*100, limit-sold),
		SoldCount:   sold,
	}
}

func showing(totalSeats int, restrictions ...*domain.LoadedRestriction) *domain.LoadedInstance {
	return &domain.LoadedInstance{
		EventInstance: domain.EventInstance{
			ID:                  1,
			EventID:             7,
			TotalSeats:          totalSeats,
			DefaultTicketTypeID: 1,
		},
		EventName:    "Hamlet",
		Restrictions: restrictions,
	}
}

func desired(entries ...domain.TicketRestriction) map[int64]domain.RestrictionInput {
	m := make(map[int64]domain.RestrictionInput, len(entries))
	for _, e := range entries {
		m[e.TicketTypeID] = domain.RestrictionInput{
			Price:           e.Price,
			ConcessionPrice: e.ConcessionPrice,
			TicketLimit:     e.TicketLimit,
		}
	}
	return m
}

func TestBuildRestrictionPlan_NoChangesYieldsEmptyPlan(t *testing.T) {
	inst := showing(10,
		restriction(11, 1, 20, 10, 0),
		restriction(12, 2, 15, 5, 0),
	)

	plan, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
		domain.TicketRestriction{TicketTypeID: 2, Price: decimal.NewFromInt(15), TicketLimit: 5},
	))

	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestBuildRestrictionPlan_GrowAddsSlots(t *testing.T) {
	inst := showing(20, restriction(11, 1, 20, 10, 0))

	plan, err := BuildRestrictionPlan(inst, 20, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 20},
	))

	require.NoError(t, err)
	require.Len(t, plan.Updates, 1)
	assert.Equal(t, int64(11), plan.Updates[0].RestrictionID)
	assert.Equal(t, 10, plan.Updates[0].AddSlots)
	assert.Empty(t, plan.Updates[0].RemoveSlotIDs)
}

func TestBuildRestrictionPlan_ShrinkRemovesUnsoldSlots(t *testing.T) {
	inst := showing(10,
		restriction(11, 1, 20, 10, 0),
		restriction(12, 2, 15, 8, 2),
	)

	plan, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
		domain.TicketRestriction{TicketTypeID: 2, Price: decimal.NewFromInt(15), TicketLimit: 5},
	))

	require.NoError(t, err)
	require.Len(t, plan.Updates, 1)
	upd := plan.Updates[0]
	assert.Equal(t, int64(12), upd.RestrictionID)
	// 8 slots total, want 5: the first three unsold slot ids go.
	assert.Equal(t, []int64{1200, 1201, 1202}, upd.RemoveSlotIDs)
	assert.Zero(t, upd.AddSlots)
}

func TestBuildRestrictionPlan_CannotShrinkBelowSold(t *testing.T) {
	inst := showing(10,
		restriction(11, 1, 20, 10, 0),
		restriction(12, 2, 15, 8, 4),
	)

	_, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
		domain.TicketRestriction{TicketTypeID: 2, Price: decimal.NewFromInt(15), TicketLimit: 3},
	))

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, invalid.Message, "below the quantity sold")
}

func TestBuildRestrictionPlan_RemoveUnsoldType(t *testing.T) {
	inst := showing(10,
		restriction(11, 1, 20, 10, 0),
		restriction(12, 2, 15, 5, 0),
	)

	plan, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
	))

	require.NoError(t, err)
	assert.Equal(t, []int64{12}, plan.Deletes)
	assert.Empty(t, plan.Updates)
}

func TestBuildRestrictionPlan_ZeroLimitMeansRemoval(t *testing.T) {
	inst := showing(10,
		restriction(11, 1, 20, 10, 0),
		restriction(12, 2, 15, 5, 0),
	)

	plan, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
		domain.TicketRestriction{TicketTypeID: 2, Price: decimal.NewFromInt(15), TicketLimit: 0},
	))

	require.NoError(t, err)
	assert.Equal(t, []int64{12}, plan.Deletes)
}

func TestBuildRestrictionPlan_CannotRemoveDefaultType(t *testing.T) {
	inst := showing(10, restriction(11, 1, 20, 10, 0))

	_, err := BuildRestrictionPlan(inst, 10, map[int64]domain.RestrictionInput{})

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, invalid.Message, "default ticket type")
}

func TestBuildRestrictionPlan_CannotRemoveSoldType(t *testing.T) {
	inst := showing(10,
		restriction(11, 1, 20, 10, 0),
		restriction(12, 2, 15, 5, 2),
	)

	_, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
	))

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, invalid.Message, "already been sold")
}

func TestBuildRestrictionPlan_DefaultLimitMustEqualTotalSeats(t *testing.T) {
	inst := showing(10, restriction(11, 1, 20, 10, 0))

	_, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 7},
	))

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, invalid.Message, "must equal total seats")
}

func TestBuildRestrictionPlan_CreatesNewTypesSortedAndCapped(t *testing.T) {
	inst := showing(10, restriction(11, 1, 20, 10, 0))

	plan, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
		domain.TicketRestriction{TicketTypeID: 5, Price: decimal.NewFromInt(12), TicketLimit: 25},
		domain.TicketRestriction{TicketTypeID: 3, Price: decimal.NewFromInt(10), TicketLimit: 4},
	))

	require.NoError(t, err)
	require.Len(t, plan.Creates, 2)
	assert.Equal(t, int64(3), plan.Creates[0].TicketTypeID)
	assert.Equal(t, 4, plan.Creates[0].Slots)
	assert.Equal(t, int64(5), plan.Creates[1].TicketTypeID)
	// Capped at the showing's total seats.
	assert.Equal(t, 10, plan.Creates[1].Slots)
	assert.Equal(t, 10, plan.Creates[1].TicketLimit)
}

func TestBuildRestrictionPlan_CompTypePricePinnedToZero(t *testing.T) {
	inst := showing(10, restriction(11, 1, 20, 10, 0))

	plan, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
		domain.TicketRestriction{TicketTypeID: 0, Price: decimal.NewFromInt(99), TicketLimit: 2},
	))

	require.NoError(t, err)
	require.Len(t, plan.Creates, 1)
	assert.Equal(t, int64(0), plan.Creates[0].TicketTypeID)
	assert.True(t, plan.Creates[0].Price.IsZero())
}

func TestBuildRestrictionPlan_NegativePriceClamped(t *testing.T) {
	inst := showing(10, restriction(11, 1, 20, 10, 0))

	plan, err := BuildRestrictionPlan(inst, 10, desired(
		domain.TicketRestriction{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 10},
		domain.TicketRestriction{TicketTypeID: 2, Price: decimal.NewFromInt(-5), TicketLimit: 3},
	))

	require.NoError(t, err)
	require.Len(t, plan.Creates, 1)
	assert.True(t, plan.Creates[0].Price.IsZero())
}

func TestBuildShowingUpdate_SoldSeatsFloorTotal(t *testing.T) {
	inst := showing(10, restriction(11, 1, 20, 10, 6))

	upd, err := BuildShowingUpdate(inst, domain.ShowingInput{
		EventDate:  time.Now(),
		TotalSeats: 4,
		Restrictions: map[int64]domain.RestrictionInput{
			1: {Price: decimal.NewFromInt(20), TicketLimit: 4},
		},
	})

	require.NoError(t, err)
	// 6 default-type seats sold, so the total cannot drop to 4.
	assert.Equal(t, 6, upd.TotalSeats)
	assert.Equal(t, 0, upd.AvailableSeats)
	require.Len(t, upd.Plan.Updates, 1)
	assert.Equal(t, 6, upd.Plan.Updates[0].TicketLimit)
}

func TestBuildShowingUpdate_AvailableSeatsDerived(t *testing.T) {
	inst := showing(10, restriction(11, 1, 20, 10, 3))

	upd, err := BuildShowingUpdate(inst, domain.ShowingInput{
		EventDate:  time.Now(),
		TotalSeats: 12,
		Restrictions: map[int64]domain.RestrictionInput{
			1: {Price: decimal.NewFromInt(20), TicketLimit: 12},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 12, upd.TotalSeats)
	assert.Equal(t, 9, upd.AvailableSeats)
}

func TestInventoryService_UpdateShowing(t *testing.T) {
	instances := mocks.NewMockInstanceRepo(t)
	svc := NewInventoryService(instances, newTestLogger(t))

	inst := showing(10, restriction(11, 1, 20, 10, 0))
	instances.EXPECT().GetLoaded(mock.Anything, int64(1)).Return(inst, nil)
	instances.EXPECT().UpdateShowing(mock.Anything, int64(1), mock.MatchedBy(func(upd domain.ShowingUpdate) bool {
		return upd.TotalSeats == 15 && upd.AvailableSeats == 15
	})).Return(nil)

	err := svc.UpdateShowing(context.Background(), 1, domain.ShowingInput{
		EventDate:  time.Now(),
		TotalSeats: 15,
		Restrictions: map[int64]domain.RestrictionInput{
			1: {Price: decimal.NewFromInt(20), TicketLimit: 15},
		},
	})

	require.NoError(t, err)
}

func TestInventoryService_UpdateShowing_InvalidPlanSkipsWrite(t *testing.T) {
	instances := mocks.NewMockInstanceRepo(t)
	svc := NewInventoryService(instances, newTestLogger(t))

	inst := showing(10,
		restriction(11, 1, 20, 10, 0),
		restriction(12, 2, 15, 5, 3),
	)
	instances.EXPECT().GetLoaded(mock.Anything, int64(1)).Return(inst, nil)

	err := svc.UpdateShowing(context.Background(), 1, domain.ShowingInput{
		EventDate:  time.Now(),
		TotalSeats: 10,
		Restrictions: map[int64]domain.RestrictionInput{
			1: {Price: decimal.NewFromInt(20), TicketLimit: 10},
			2: {Price: decimal.NewFromInt(15), TicketLimit: 1},
		},
	})

	require.Error(t, err)
	_, ok := domain.AsInvalidInput(err)
	assert.True(t, ok)
	instances.AssertNotCalled(t, "UpdateShowing")
}

func TestInventoryService_GetRestriction_NotAvailable(t *testing.T) {
	instances := mocks.NewMockInstanceRepo(t)
	svc := NewInventoryService(instances, newTestLogger(t))

	instances.EXPECT().ListRestrictions(mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.GetRestriction(context.Background(), 4, 2)

	require.Error(t, err)
	invalid, ok := domain.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, 400, invalid.Code)
}
