package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SignUp(c *ginext.Context)
	Login(c *ginext.Context)

	ListSpots(c *ginext.Context)
	GetSpot(c *ginext.Context)
	CreateSpot(c *ginext.Context)
	ListOwnedSpots(c *ginext.Context)
	GetOwnedSpot(c *ginext.Context)
	UpdateSpot(c *ginext.Context)
	DeleteSpot(c *ginext.Context)
	Stats(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	UpdateBooking(c *ginext.Context)

	CreateSlip(c *ginext.Context)
	ListSlips(c *ginext.Context)
	UpdateSlip(c *ginext.Context)
	DeleteSlip(c *ginext.Context)
	ClearSlips(c *ginext.Context)
	SlipQR(c *ginext.Context)
}

// Guards are route-group middlewares. Admin runs on every /api/admin route,
// BookingLimit only on public booking creation.
type Guards struct {
	Admin        []ginext.HandlerFunc
	BookingLimit ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/login", h.Login)

		// Spots
		api.GET("/parking-spots", h.ListSpots)
		api.GET("/parking-spots/:id", h.GetSpot)

		// Bookings
		booking := []ginext.HandlerFunc{h.CreateBooking}
		if g.BookingLimit != nil {
			booking = []ginext.HandlerFunc{g.BookingLimit, h.CreateBooking}
		}
		api.POST("/bookings", booking...)
	}

	admin := api.Group("/admin", g.Admin...)
	{
		admin.GET("/parking-spots", h.ListOwnedSpots)
		admin.POST("/parking-spots", h.CreateSpot)
		admin.GET("/parking-spots/:id", h.GetOwnedSpot)
		admin.PATCH("/parking-spots/:id", h.UpdateSpot)
		admin.DELETE("/parking-spots/:id", h.DeleteSpot)

		admin.GET("/bookings", h.ListBookings)
		admin.PATCH("/bookings/:id", h.UpdateBooking)

		admin.GET("/slips", h.ListSlips)
		admin.POST("/slips", h.CreateSlip)
		admin.DELETE("/slips/clear", h.ClearSlips)
		admin.PATCH("/slips/:id", h.UpdateSlip)
		admin.DELETE("/slips/:id", h.DeleteSlip)
		admin.GET("/slips/:id/qr", h.SlipQR)

		admin.GET("/stats", h.Stats)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
