package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/HaliTran/wondertix/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type InventoryService struct {
	instances ports.InstanceRepo
	logger    logger.Logger
}

func NewInventoryService(instances ports.InstanceRepo, logger logger.Logger) *InventoryService {
	return &InventoryService{
		instances: instances,
		logger:    logger,
	}
}

// UpdateShowing applies an administrator's showing edit: the showing's own
// fields plus the desired ticket type configuration. Seats already sold
// floor the total; the restriction plan is computed against the snapshot
// and applied as one transaction.
func (s *InventoryService) UpdateShowing(ctx context.Context, id int64, input domain.ShowingInput) error {
	inst, err := s.instances.GetLoaded(ctx, id)
	if err != nil {
		return fmt.Errorf("load showing: %w", err)
	}

	upd, err := BuildShowingUpdate(inst, input)
	if err != nil {
		return err
	}

	if err = s.instances.UpdateShowing(ctx, id, *upd); err != nil {
		return fmt.Errorf("update showing: %w", err)
	}

	s.logger.Info("showing updated",
		logger.Int64("showing_id", id),
		logger.Int("total_seats", upd.TotalSeats),
		logger.Int("restrictions_deleted", len(upd.Plan.Deletes)),
		logger.Int("restrictions_updated", len(upd.Plan.Updates)),
		logger.Int("restrictions_created", len(upd.Plan.Creates)),
	)

	return nil
}

func (s *InventoryService) ListRestrictions(ctx context.Context, filter domain.RestrictionFilter) ([]*domain.RestrictionSummary, error) {
	return s.instances.ListRestrictions(ctx, filter)
}

func (s *InventoryService) GetRestriction(ctx context.Context, instanceID, ticketTypeID int64) (*domain.RestrictionSummary, error) {
	restrictions, err := s.instances.ListRestrictions(ctx, domain.RestrictionFilter{
		EventInstanceID: &instanceID,
		TicketTypeID:    &ticketTypeID,
	})
	if err != nil {
		return nil, err
	}
	if len(restrictions) == 0 {
		return nil, domain.NewBadRequest("ticket type %d not available for showing %d", ticketTypeID, instanceID)
	}
	return restrictions[0], nil
}

func (s *InventoryService) CheckIn(ctx context.Context, ticketID int64, redeemed bool) error {
	if err := s.instances.SetRedeemed(ctx, ticketID, redeemed); err != nil {
		return fmt.Errorf("check in ticket %d: %w", ticketID, err)
	}
	return nil
}

// BuildShowingUpdate computes the write-set for a showing edit. Total seats
// can never drop below the default-type slots already sold; when sold seats
// force the total up, the default restriction's limit follows.
func BuildShowingUpdate(inst *domain.LoadedInstance, input domain.ShowingInput) (*domain.ShowingUpdate, error) {
	soldDefault := 0
	if def := inst.Restriction(inst.DefaultTicketTypeID); def != nil {
		soldDefault = def.SoldCount
	}

	totalSeats := input.TotalSeats
	if soldDefault > totalSeats {
		totalSeats = soldDefault
	}

	desired := make(map[int64]domain.RestrictionInput, len(input.Restrictions))
	for typeID, want := range input.Restrictions {
		if typeID == inst.DefaultTicketTypeID && want.TicketLimit == input.TotalSeats {
			want.TicketLimit = totalSeats
		}
		desired[typeID] = want
	}

	plan, err := BuildRestrictionPlan(inst, totalSeats, desired)
	if err != nil {
		return nil, err
	}

	return &domain.ShowingUpdate{
		EventDate:      input.EventDate,
		Detail:         input.Detail,
		TotalSeats:     totalSeats,
		AvailableSeats: totalSeats - soldDefault,
		SalesStatus:    input.SalesStatus,
		Preview:        input.Preview,
		PurchaseURI:    input.PurchaseURI,
		Plan:           plan,
	}, nil
}

// BuildRestrictionPlan diffs a showing's current restrictions against the
// desired configuration and produces the create/update/delete batch, or
// fails when the edit would violate a capacity invariant. Desired entries
// are consumed as existing restrictions are matched; whatever remains
// becomes a new restriction. Reconciling a showing against its current
// state yields an empty plan.
func BuildRestrictionPlan(
	inst *domain.LoadedInstance,
	totalSeats int,
	desired map[int64]domain.RestrictionInput,
) (*domain.RestrictionPlan, error) {
	remaining := make(map[int64]domain.RestrictionInput, len(desired))
	for typeID, want := range desired {
		remaining[typeID] = want
	}

	plan := &domain.RestrictionPlan{}
	for _, old := range inst.Restrictions {
		want, ok := remaining[old.TicketTypeID]
		delete(remaining, old.TicketTypeID)

		removed := !ok || want.TicketLimit == 0
		switch {
		case removed && old.SoldCount == 0 && old.TicketTypeID != inst.DefaultTicketTypeID:
			plan.Deletes = append(plan.Deletes, old.ID)
			continue
		case removed && old.SoldCount == 0:
			return nil, domain.NewInvalidInput("cannot remove the default ticket type")
		case removed:
			return nil, domain.NewInvalidInput("cannot remove a ticket type for which tickets have already been sold")
		case old.SoldCount > want.TicketLimit:
			return nil, domain.NewInvalidInput("cannot reduce a ticket type quantity below the quantity sold to date")
		case old.TicketTypeID == inst.DefaultTicketTypeID && want.TicketLimit != totalSeats:
			return nil, domain.NewInvalidInput("default ticket type quantity must equal total seats")
		}

		upd := domain.RestrictionUpdate{
			RestrictionID:        old.ID,
			TicketLimit:          want.TicketLimit,
			Price:                restrictionPrice(old.TicketTypeID, want.Price),
			ConcessionPrice:      domain.CoercePrice(want.ConcessionPrice),
			SeasonPriceDefaultID: seasonDefault(inst, old.TicketTypeID),
		}

		target := totalSeats
		if want.TicketLimit < totalSeats {
			target = want.TicketLimit
		}
		switch diff := target - old.SlotCount(); {
		case diff > 0:
			upd.AddSlots = diff
		case diff < 0:
			// Only unsold slots are ever removed; the sold-count guard
			// above keeps -diff within the unsold pool.
			upd.RemoveSlotIDs = append([]int64(nil), old.UnsoldSlots[:-diff]...)
		}

		if restrictionUnchanged(old, upd) {
			continue
		}
		plan.Updates = append(plan.Updates, upd)
	}

	for typeID, want := range remaining {
		if want.TicketLimit == 0 {
			continue
		}
		slots := want.TicketLimit
		if totalSeats < slots {
			slots = totalSeats
		}
		plan.Creates = append(plan.Creates, domain.RestrictionCreate{
			TicketTypeID:         typeID,
			TicketLimit:          slots,
			Price:                restrictionPrice(typeID, want.Price),
			ConcessionPrice:      domain.CoercePrice(want.ConcessionPrice),
			SeasonPriceDefaultID: seasonDefault(inst, typeID),
			Slots:                slots,
		})
	}
	sort.Slice(plan.Creates, func(i, j int) bool {
		return plan.Creates[i].TicketTypeID < plan.Creates[j].TicketTypeID
	})

	return plan, nil
}

// complimentaryTicketTypeID is the placeholder type for comped admissions;
// its price is pinned to zero regardless of input.
const complimentaryTicketTypeID = 0

func restrictionPrice(ticketTypeID int64, price decimal.Decimal) decimal.Decimal {
	if ticketTypeID == complimentaryTicketTypeID {
		return decimal.Zero
	}
	return domain.CoercePrice(price)
}

func seasonDefault(inst *domain.LoadedInstance, ticketTypeID int64) *int64 {
	if id, ok := inst.SeasonPriceDefaults[ticketTypeID]; ok {
		return &id
	}
	return nil
}

func restrictionUnchanged(old *domain.LoadedRestriction, upd domain.RestrictionUpdate) bool {
	return upd.TicketLimit == old.TicketLimit &&
		upd.Price.Equal(old.Price) &&
		upd.ConcessionPrice.Equal(old.ConcessionPrice) &&
		upd.AddSlots == 0 &&
		len(upd.RemoveSlotIDs) == 0 &&
		equalIDPtr(upd.SeasonPriceDefaultID, old.SeasonPriceDefaultID)
}

func equalIDPtr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
