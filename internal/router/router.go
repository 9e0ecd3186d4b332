package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Checkout(c *ginext.Context)
	UpdateShowing(c *ginext.Context)
	ListRestrictions(c *ginext.Context)
	ListShowingRestrictions(c *ginext.Context)
	GetRestriction(c *ginext.Context)
	CheckInTicket(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEventShowings(c *ginext.Context)
	SetEventActive(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListTicketTypes(c *ginext.Context)
	CreateTicketType(c *ginext.Context)
	RemoveTicketType(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Checkout
		api.POST("/checkout", h.Checkout)

		// Events
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/showings", h.GetEventShowings)
		api.PUT("/events/active/:id/:status", h.SetEventActive)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Showings
		api.PUT("/showings/:id", h.UpdateShowing)

		// Ticket restrictions
		api.GET("/ticket-restrictions", h.ListRestrictions)
		api.GET("/ticket-restrictions/:id", h.ListShowingRestrictions)
		api.GET("/ticket-restrictions/:id/:tickettypeid", h.GetRestriction)

		// Ticket types
		api.GET("/ticket-types", h.ListTicketTypes)
		api.POST("/ticket-types", h.CreateTicketType)
		api.DELETE("/ticket-types/:id", h.RemoveTicketType)

		// Tickets
		api.PUT("/tickets/checkin", h.CheckInTicket)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
