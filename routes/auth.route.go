package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/controllers"
	"socialnet/middleware"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/signup", middleware.RequireGuest, controllers.SignUpPage)
	app.Post("/signup", middleware.RequireGuest, controllers.SignUpUser)
	app.Get("/login", middleware.RequireGuest, controllers.SignInPage)
	app.Post("/login", middleware.RequireGuest, controllers.SignInUser)
	app.Get("/logout", middleware.RequireAuth, controllers.LogoutUser)
}
