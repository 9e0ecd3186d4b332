package service

import (
	"context"
	"fmt"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/HaliTran/wondertix/internal/service/ports"
)

type EventService struct {
	events      ports.EventRepo
	ticketTypes ports.TicketTypeRepo
}

func NewEventService(events ports.EventRepo, ticketTypes ports.TicketTypeRepo) *EventService {
	return &EventService{
		events:      events,
		ticketTypes: ticketTypes,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, domain.NewInvalidInput("event name is required")
	}

	event := &domain.Event{
		SeasonID:             input.SeasonID,
		Name:                 input.Name,
		Description:          input.Description,
		Active:               input.Active,
		SeasonTicketEligible: input.SeasonTicketEligible,
		ImageURL:             input.ImageURL,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, active *bool) ([]*domain.Event, error) {
	return s.events.List(ctx, active)
}

func (s *EventService) GetWithShowings(ctx context.Context, id int64) (*domain.EventWithShowings, error) {
	return s.events.GetWithShowings(ctx, id)
}

func (s *EventService) SetActive(ctx context.Context, id int64, active bool) (*domain.Event, error) {
	return s.events.SetActive(ctx, id, active)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.events.SoftDelete(ctx, id)
}

func (s *EventService) ListTicketTypes(ctx context.Context) ([]*domain.TicketType, error) {
	return s.ticketTypes.List(ctx)
}

func (s *EventService) CreateTicketType(ctx context.Context, t *domain.TicketType) (*domain.TicketType, error) {
	if t.Description == "" {
		return nil, domain.NewInvalidInput("ticket type description is required")
	}
	t.Price = domain.CoercePrice(t.Price)
	t.ConcessionPrice = domain.CoercePrice(t.ConcessionPrice)

	if err := s.ticketTypes.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create ticket type: %w", err)
	}
	return t, nil
}

func (s *EventService) RemoveTicketType(ctx context.Context, id int64) error {
	return s.ticketTypes.Remove(ctx, id)
}
