package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NotFoundRoute func for describe 404 Error route.
func NotFoundRoute(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		// Static mounts handle their own misses.
		if strings.HasPrefix(c.Path(), "/media/") || strings.HasPrefix(c.Path(), "/public/") {
			return c.Next()
		}

		return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
			"Title": "Not Found",
		})
	})
}
