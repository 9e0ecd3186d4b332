package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HaliTran/wondertix/internal/domain"
	"github.com/HaliTran/wondertix/internal/handler/dto"
	hmocks "github.com/HaliTran/wondertix/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockCheckoutSvc, *hmocks.MockInventorySvc, *hmocks.MockEventSvc, http.Handler) {
	t.Helper()
	checkoutSvc := hmocks.NewMockCheckoutSvc(t)
	inventorySvc := hmocks.NewMockInventorySvc(t)
	eventSvc := hmocks.NewMockEventSvc(t)

	h := NewHandler(checkoutSvc, inventorySvc, eventSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/checkout", h.Checkout)
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/showings", h.GetEventShowings)
		api.PUT("/events/active/:id/:status", h.SetEventActive)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.PUT("/showings/:id", h.UpdateShowing)
		api.GET("/ticket-restrictions", h.ListRestrictions)
		api.GET("/ticket-restrictions/:id", h.ListShowingRestrictions)
		api.GET("/ticket-restrictions/:id/:tickettypeid", h.GetRestriction)
		api.GET("/ticket-types", h.ListTicketTypes)
		api.POST("/ticket-types", h.CreateTicketType)
		api.DELETE("/ticket-types/:id", h.RemoveTicketType)
		api.PUT("/tickets/checkin", h.CheckInTicket)
	}

	return checkoutSvc, inventorySvc, eventSvc, r
}

func checkoutBody() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		CartItems: []dto.CartItemRequest{
			{
				ProductID:    1,
				TicketTypeID: 1,
				Quantity:     2,
				Price:        decimal.NewFromInt(20),
				Description:  "General Admission",
				EventID:      7,
				EventName:    "Hamlet",
			},
		},
		FormData: dto.CheckoutFormRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
	}
}

// --- Checkout ---

func TestHandler_Checkout_Success(t *testing.T) {
	checkoutSvc, _, _, r := setupRouter(t)

	checkoutSvc.EXPECT().Checkout(mock.Anything, mock.MatchedBy(func(req domain.CheckoutRequest) bool {
		return len(req.CartItems) == 1 &&
			req.CartItems[0].Quantity == 2 &&
			req.Form.Email == "ada@example.com"
	})).Return("cs_123", nil)

	body, _ := json.Marshal(checkoutBody())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cs_123", resp.ID)
}

func TestHandler_Checkout_ValidationError(t *testing.T) {
	checkoutSvc, _, _, r := setupRouter(t)

	checkoutSvc.EXPECT().Checkout(mock.Anything, mock.Anything).
		Return("", domain.NewInvalidInput("requested tickets no longer available"))

	body, _ := json.Marshal(checkoutBody())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "requested tickets no longer available", resp.Error)
}

func TestHandler_Checkout_PaymentUnavailable(t *testing.T) {
	checkoutSvc, _, _, r := setupRouter(t)

	checkoutSvc.EXPECT().Checkout(mock.Anything, mock.Anything).
		Return("", domain.ErrPaymentUnavailable)

	body, _ := json.Marshal(checkoutBody())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_Checkout_BadJSON(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader([]byte(`{"cartItems": [`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Showings ---

func TestHandler_UpdateShowing_Success(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	inventorySvc.EXPECT().UpdateShowing(mock.Anything, int64(3), mock.MatchedBy(func(input domain.ShowingInput) bool {
		return input.TotalSeats == 50 && input.SalesStatus && len(input.Restrictions) == 1
	})).Return(nil)

	body, _ := json.Marshal(dto.UpdateShowingRequest{
		EventDate:  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		TotalSeats: 50,
		Restrictions: []dto.RestrictionRequest{
			{TicketTypeID: 1, Price: decimal.NewFromInt(20), TicketLimit: 50},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/showings/3", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateShowing_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"eventdate":"tomorrow","totalseats":50}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/showings/3", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateShowing_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.UpdateShowingRequest{
		EventDate:  time.Now().Format(time.RFC3339),
		TotalSeats: 50,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/showings/abc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateShowing_CapacityConflict(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	inventorySvc.EXPECT().UpdateShowing(mock.Anything, int64(3), mock.Anything).
		Return(domain.NewInvalidInput("cannot remove a ticket type for which tickets have already been sold"))

	body, _ := json.Marshal(dto.UpdateShowingRequest{
		EventDate:  time.Now().Format(time.RFC3339),
		TotalSeats: 50,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/showings/3", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// --- Restrictions ---

func TestHandler_ListRestrictions_FilterByShowing(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	inventorySvc.EXPECT().ListRestrictions(mock.Anything, mock.MatchedBy(func(f domain.RestrictionFilter) bool {
		return f.EventInstanceID != nil && *f.EventInstanceID == 4
	})).Return([]*domain.RestrictionSummary{
		{ID: 11, EventInstanceID: 4, TicketTypeID: 1, TicketLimit: 10},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ticket-restrictions?eventinstanceid=4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []domain.RestrictionSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetRestriction_Success(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	inventorySvc.EXPECT().GetRestriction(mock.Anything, int64(4), int64(2)).
		Return(&domain.RestrictionSummary{ID: 12, EventInstanceID: 4, TicketTypeID: 2, TicketLimit: 5, TicketsSold: 2}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ticket-restrictions/4/2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.RestrictionSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TicketsSold)
}

// --- Tickets ---

func TestHandler_CheckInTicket_Success(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	inventorySvc.EXPECT().CheckIn(mock.Anything, int64(8), true).Return(nil)

	body := []byte(`{"ticketID":8,"isCheckedIn":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tickets/checkin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CheckInTicket_NotFound(t *testing.T) {
	_, inventorySvc, _, r := setupRouter(t)

	inventorySvc.EXPECT().CheckIn(mock.Anything, int64(8), false).Return(domain.ErrTicketNotFound)

	body := []byte(`{"ticketID":8,"isCheckedIn":false}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tickets/checkin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(input domain.CreateEventInput) bool {
		return input.Name == "Hamlet" && input.Active
	})).Return(&domain.Event{ID: 7, Name: "Hamlet", Active: true, CreatedAt: time.Now()}, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Name:        "Hamlet",
		Description: "A tragedy",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hamlet", resp.Name)
}

func TestHandler_CreateEvent_MissingName(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"eventdescription":"no name"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_ActiveFilter(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything, mock.MatchedBy(func(active *bool) bool {
		return active != nil && *active
	})).Return([]*domain.Event{
		{ID: 7, Name: "Hamlet", Active: true, CreatedAt: time.Now()},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?active=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEventShowings_Success(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().GetWithShowings(mock.Anything, int64(7)).Return(&domain.EventWithShowings{
		Event: domain.Event{ID: 7, Name: "Hamlet", CreatedAt: time.Now()},
		Showings: []domain.EventInstance{
			{ID: 1, EventID: 7, EventDate: time.Now(), TotalSeats: 100, AvailableSeats: 95, DefaultTicketTypeID: 1},
		},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/7/showings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventWithShowingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Showings, 1)
	assert.Equal(t, 95, resp.Showings[0].AvailableSeats)
}

func TestHandler_SetEventActive_Success(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().SetActive(mock.Anything, int64(7), false).
		Return(&domain.Event{ID: 7, Name: "Hamlet", Active: false, CreatedAt: time.Now()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/active/7/false", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Active)
}

func TestHandler_SetEventActive_InvalidStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/active/7/maybe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Delete(mock.Anything, int64(7)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Ticket types ---

func TestHandler_CreateTicketType_Success(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().CreateTicketType(mock.Anything, mock.MatchedBy(func(tt *domain.TicketType) bool {
		return tt.Description == "Senior" && tt.Price.Equal(decimal.NewFromInt(15))
	})).Return(&domain.TicketType{ID: 3, Description: "Senior", Price: decimal.NewFromInt(15)}, nil)

	body, _ := json.Marshal(dto.CreateTicketTypeRequest{
		Description: "Senior",
		Price:       decimal.NewFromInt(15),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ticket-types", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TicketTypeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "15.00", resp.Price)
}

func TestHandler_RemoveTicketType_InUse(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().RemoveTicketType(mock.Anything, int64(3)).
		Return(domain.NewInvalidInput("ticket type is in use and cannot be removed"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/ticket-types/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	_, _, eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, int64(7)).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
