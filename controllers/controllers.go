package controllers

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/models"
	"socialnet/utils"
)

// render wraps c.Render, threading the acting identity and any pending flash
// message into every page.
func render(c *fiber.Ctx, status int, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	if user, ok := c.Locals("user").(models.UserResponse); ok {
		bind["CurrentUser"] = user
	}
	if _, ok := bind["Flash"]; !ok {
		bind["Flash"] = utils.PopFlash(c)
	}
	return c.Status(status).Render(name, bind)
}

// currentUser returns the acting identity. Handlers behind RequireAuth may
// call it unconditionally.
func currentUser(c *fiber.Ctx) models.UserResponse {
	return c.Locals("user").(models.UserResponse)
}

func renderNotFound(c *fiber.Ctx) error {
	return render(c, fiber.StatusNotFound, "404", fiber.Map{"Title": "Not Found"})
}
