package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-booking/internal/handler"
	"github.com/iliyamo/hall-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the credential check endpoint. Login lives outside
// the protected groups because callers do not have a token yet.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/api/login/check", a.CheckLogin)
}

// RegisterBooking registers the booking ledger endpoints under /api/booking.
// Every route requires a valid access token.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/api/booking", middleware.JWTAuth(jwtSecret))

	g.POST("/online-book", b.CreateBooking) // single booking, client-supplied id honored
	g.POST("/create", b.CreateBookings)     // batch, one transaction
	g.PUT("/checkout", b.Checkout)
	g.GET("/active/:id", b.GetActiveBookings) // :id is a worker id
	g.GET("/:id", b.GetBooking)
}

// RegisterSettings registers the per-admin pricing profile endpoints under
// /api/settings. Every route requires a valid access token.
func RegisterSettings(e *echo.Echo, s *handler.SettingsHandler, jwtSecret string) {
	g := e.Group("/api/settings", middleware.JWTAuth(jwtSecret))

	g.GET("/hall-types/:adminId", s.GetHallTypes)
	g.GET("/halls", s.GetAllHalls)
	g.POST("/halls", s.AddHall)
	g.PUT("/halls/:adminId", s.UpdateHall)
	g.DELETE("/halls/:adminId", s.DeleteHall)
}
