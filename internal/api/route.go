package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wpwhiz/signalwire-woo/internal/api/middleware"
	v1 "github.com/wpwhiz/signalwire-woo/internal/api/v1"
)

func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
}

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)

	// Webhook path matches the route the SignalWire space is configured with.
	app.Post("/signalwire-sms/v1/receive/", handler.Receive)

	app.Post("/v1/orders/:id/status", handler.OrderStatus)
}
