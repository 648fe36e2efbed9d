package api

import (
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/leandrobouwier/Brev.ly/web"
)

// registerFrontend serves the embedded single-page client: the
// management page at /, the delayed-redirect page at /r/:code and the
// static assets under /assets.
func (a *API) registerFrontend(app *fiber.App) {
	index, _ := web.FS.ReadFile("index.html")
	redirectPage, _ := web.FS.ReadFile("redirect.html")

	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(index)
	})

	app.Get("/r/:code", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(redirectPage)
	})

	assets, _ := fs.Sub(web.FS, "assets")
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root: http.FS(assets),
	}))
}
