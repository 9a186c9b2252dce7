// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"concertd/internal/handler"
)

// RegisterRoutes maps every route of the concert API onto the provided
// Echo instance.  Collection-level PUT, PATCH and DELETE are registered
// explicitly so they answer with the API's own 405 body instead of
// Echo's default.
func RegisterRoutes(e *echo.Echo, h *handler.ConcertHandler) {
	e.GET("/healthz", handler.Health)

	e.POST("/concerts", h.CreateConcert)
	e.GET("/concerts", h.ListConcerts)
	e.PUT("/concerts", h.MethodNotAllowed)
	e.PATCH("/concerts", h.MethodNotAllowed)
	e.DELETE("/concerts", h.MethodNotAllowed)

	e.POST("/concerts/:id", h.PostConcertByID)
	e.GET("/concerts/:id", h.GetConcert)
	e.PUT("/concerts/:id", h.ReplaceConcert)
	e.PATCH("/concerts/:id", h.PatchConcert)
	e.DELETE("/concerts/:id", h.DeleteConcert)
}
