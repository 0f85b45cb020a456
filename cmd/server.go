package main

import (
	"github.com/Dheerajaldak/GitHub-API/config"
	api "github.com/Dheerajaldak/GitHub-API/internal/oapi"
	"github.com/Dheerajaldak/GitHub-API/internal/transport/http/middleware"
	"github.com/Dheerajaldak/GitHub-API/internal/transport/http/server/handlers-fiber"
	"github.com/Dheerajaldak/GitHub-API/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// newServer builds the fiber app with middleware, liveness probe and API routes.
func newServer(cfg *config.Config, log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log.Named("http")))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log.Named("handler"), uc)
	api.RegisterHandlers(serv, h)
	return serv
}
