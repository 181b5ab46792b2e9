package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"socialnet/initializers"
	"socialnet/models"
	"socialnet/utils"
)

// DeserializeUser resolves the access_token cookie (or Authorization header)
// into a models.UserResponse under c.Locals("user"). Requests without a valid
// token continue as anonymous.
func DeserializeUser(c *fiber.Ctx) error {
	tokenString := c.Cookies("access_token")
	if authorization := c.Get("Authorization"); strings.HasPrefix(authorization, "Bearer ") {
		tokenString = strings.TrimPrefix(authorization, "Bearer ")
	}
	if tokenString == "" {
		return c.Next()
	}

	config, err := initializers.LoadConfig(".")
	if err != nil {
		return c.Next()
	}

	sub, err := utils.ValidateToken(tokenString, config.TokenSecret)
	if err != nil {
		return c.Next()
	}

	var user models.User
	if err := initializers.DB.First(&user, "id = ?", fmt.Sprint(sub)).Error; err != nil {
		return c.Next()
	}

	c.Locals("user", models.FilterUserRecord(&user))
	return c.Next()
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.UserResponse); !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireGuest sends already authenticated users back home.
func RequireGuest(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.UserResponse); ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Next()
}
