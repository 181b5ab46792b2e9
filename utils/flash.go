package utils

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// SetFlash stores a one-shot message shown on the next rendered page.
func SetFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// PopFlash returns the pending message, if any, and clears it.
func PopFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
	})
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
