package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leandrobouwier/Brev.ly/report"
	"github.com/leandrobouwier/Brev.ly/service"
	"github.com/leandrobouwier/Brev.ly/shared"
)

type API struct {
	service *service.LinkService
	target  report.Target
	logger  *shared.Logger
}

func New(svc *service.LinkService, target report.Target, logger *shared.Logger) *API {
	return &API{
		service: svc,
		target:  target,
		logger:  logger,
	}
}

// Register wires middlewares and routes. The /:code redirect is the
// catch-all and must stay last.
func (a *API) Register(app *fiber.App) {
	app.Use(RequestCounterMiddleware)
	app.Use(ResponseStatusCodeMiddleware)
	app.Use(RequestDurationMiddleware)

	app.Get("/healthz", a.health)
	app.Post("/links", a.createLink)
	app.Get("/links", a.listLinks)
	app.Delete("/links/:id", a.deleteLink)
	app.Get("/metrics", a.exportMetrics)
	app.Get("/internal/metrics", prometheusHandler)

	a.registerFrontend(app)

	app.Get("/:code", a.redirect)
}

func (a *API) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
