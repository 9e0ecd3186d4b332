package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrShowingNotFound    = errors.New("showing not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrDiscountNotFound   = errors.New("discount not found")
	ErrContactNotFound    = errors.New("contact not found")
)

// ErrPaymentUnavailable is returned when a paid checkout is attempted while
// the payment provider is not configured.
var ErrPaymentUnavailable = errors.New("payment provider unavailable")

// InvalidInputError is a client-correctable validation failure. It carries
// the HTTP status the handler should respond with, usually 422.
type InvalidInputError struct {
	Code    int
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func NewInvalidInput(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{
		Code:    http.StatusUnprocessableEntity,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewBadRequest(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var e *InvalidInputError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
