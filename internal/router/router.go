package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCourt(c *ginext.Context)
	GetCourt(c *ginext.Context)
	GetCourtSchedules(c *ginext.Context)
	GetCourtDetails(c *ginext.Context)
	ListCourts(c *ginext.Context)

	AddSchedule(c *ginext.Context)
	GetSchedule(c *ginext.Context)
	ListSchedules(c *ginext.Context)
	FilterSchedules(c *ginext.Context)
	FilterAvailableSchedules(c *ginext.Context)

	CreateGuest(c *ginext.Context)
	GetGuest(c *ginext.Context)
	SearchGuest(c *ginext.Context)
	ListGuests(c *ginext.Context)
	UpdateGuest(c *ginext.Context)
	DeleteGuest(c *ginext.Context)

	BookReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	FilterReservations(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	RescheduleReservation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Courts
		api.POST("/courts", h.CreateCourt)
		api.GET("/courts", h.ListCourts)
		api.GET("/courts/:id", h.GetCourt)
		api.GET("/courts/:id/schedules", h.GetCourtSchedules)
		api.GET("/courts/:id/details", h.GetCourtDetails)

		// Schedules
		api.POST("/schedules", h.AddSchedule)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:id", h.GetSchedule)
		api.POST("/schedules/filter", h.FilterSchedules)
		api.POST("/schedules/filter/available", h.FilterAvailableSchedules)

		// Guests
		api.POST("/guests", h.CreateGuest)
		api.GET("/guests", h.ListGuests)
		api.GET("/guests/search", h.SearchGuest)
		api.GET("/guests/:id", h.GetGuest)
		api.PUT("/guests/:id", h.UpdateGuest)
		api.DELETE("/guests/:id", h.DeleteGuest)

		// Reservations
		api.POST("/reservations", h.BookReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/filter", h.FilterReservations)
		api.DELETE("/reservations/:id", h.CancelReservation)
		api.PUT("/reservations/:id/reschedule", h.RescheduleReservation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
