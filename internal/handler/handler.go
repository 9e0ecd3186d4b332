package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/HaliTran/wondertix/internal/handler/dto"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/ginext"
)

type CheckoutSvc interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (string, error)
}

type InventorySvc interface {
	UpdateShowing(ctx context.Context, id int64, input domain.ShowingInput) error
	ListRestrictions(ctx context.Context, filter domain.RestrictionFilter) ([]*domain.RestrictionSummary, error)
	GetRestriction(ctx context.Context, instanceID, ticketTypeID int64) (*domain.RestrictionSummary, error)
	CheckIn(ctx context.Context, ticketID int64, redeemed bool) error
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, active *bool) ([]*domain.Event, error)
	GetWithShowings(ctx context.Context, id int64) (*domain.EventWithShowings, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
	ListTicketTypes(ctx context.Context) ([]*domain.TicketType, error)
	CreateTicketType(ctx context.Context, t *domain.TicketType) (*domain.TicketType, error)
	RemoveTicketType(ctx context.Context, id int64) error
}

type Handler struct {
	checkoutService  CheckoutSvc
	inventoryService InventorySvc
	eventService     EventSvc
}

func NewHandler(checkoutService CheckoutSvc, inventoryService InventorySvc, eventService EventSvc) *Handler {
	return &Handler{
		checkoutService:  checkoutService,
		inventoryService: inventoryService,
		eventService:     eventService,
	}
}

// Checkout

func (h *Handler) Checkout(c *ginext.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sessionID, err := h.checkoutService.Checkout(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutResponse(sessionID))
}

// Showings

func (h *Handler) UpdateShowing(c *ginext.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateShowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid eventdate format, expected RFC3339",
		})
		return
	}

	if err := h.inventoryService.UpdateShowing(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

// Restrictions

func (h *Handler) ListRestrictions(c *ginext.Context) {
	var filter domain.RestrictionFilter
	if raw := c.Query("eventinstanceid"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid eventinstanceid"})
			return
		}
		filter.EventInstanceID = &id
	}

	restrictions, err := h.inventoryService.ListRestrictions(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, restrictions)
}

func (h *Handler) ListShowingRestrictions(c *ginext.Context) {
	instanceID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	restrictions, err := h.inventoryService.ListRestrictions(c.Request.Context(), domain.RestrictionFilter{
		EventInstanceID: &instanceID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, restrictions)
}

func (h *Handler) GetRestriction(c *ginext.Context) {
	instanceID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	ticketTypeID, ok := h.pathID(c, "tickettypeid")
	if !ok {
		return
	}

	restriction, err := h.inventoryService.GetRestriction(c.Request.Context(), instanceID, ticketTypeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, restriction)
}

// Tickets

func (h *Handler) CheckInTicket(c *ginext.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.inventoryService.CheckIn(c.Request.Context(), req.TicketID, *req.Redeemed); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "checked in"})
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid active filter"})
			return
		}
		active = &v
	}

	events, err := h.eventService.List(c.Request.Context(), active)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEventShowings(c *ginext.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.eventService.GetWithShowings(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventWithShowingsResponse(details))
}

func (h *Handler) SetEventActive(c *ginext.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	active, err := strconv.ParseBool(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
		return
	}

	event, err := h.eventService.SetActive(c.Request.Context(), id, active)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Ticket types

func (h *Handler) ListTicketTypes(c *ginext.Context) {
	types, err := h.eventService.ListTicketTypes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, dto.ToTicketTypeResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateTicketType(c *ginext.Context) {
	var req dto.CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.eventService.CreateTicketType(c.Request.Context(), &domain.TicketType{
		Description:     req.Description,
		Price:           req.Price,
		ConcessionPrice: req.ConcessionPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketTypeResponse(created))
}

func (h *Handler) RemoveTicketType(c *ginext.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.RemoveTicketType(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "removed"})
}

func (h *Handler) pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var invalid *domain.InvalidInputError
	var pqErr *pq.Error

	switch {
	case errors.As(err, &invalid):
		c.JSON(invalid.Code, dto.ErrorResponse{Error: invalid.Message})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrShowingNotFound),
		errors.Is(err, domain.ErrTicketTypeNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrDiscountNotFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &pqErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
