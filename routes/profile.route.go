package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/controllers"
	"socialnet/middleware"
)

func SetupProfileRoutes(app *fiber.App) {
	app.Get("/profile/edit", middleware.RequireAuth, controllers.EditProfilePage)
	app.Post("/profile/edit", middleware.RequireAuth, controllers.EditProfile)
	app.Get("/profile/:id", middleware.RequireAuth, controllers.GetUserProfile)
}
