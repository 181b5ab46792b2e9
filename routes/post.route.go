package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/controllers"
	"socialnet/middleware"
)

func SetupPostRoutes(app *fiber.App) {
	app.Get("/", controllers.GetPosts)

	// Static segments must register ahead of /post/:id.
	app.Get("/post/create", middleware.RequireAuth, controllers.CreatePostPage)
	app.Post("/post/create", middleware.RequireAuth, controllers.CreatePost)
	app.Get("/post/update/:id", middleware.RequireAuth, controllers.UpdatePostPage)
	app.Post("/post/update/:id", middleware.RequireAuth, controllers.UpdatePost)
	app.Post("/post/delete/:id", middleware.RequireAuth, controllers.DeletePost)

	app.Get("/post/:id", middleware.RequireAuth, controllers.GetPostDetail)
	app.Post("/post/:id/like", middleware.RequireAuth, controllers.ToggleLike)
	app.Post("/post/:id/comment", middleware.RequireAuth, controllers.AddComment)
	app.Post("/comment/delete/:id", middleware.RequireAuth, controllers.DeleteComment)

	app.Get("/category/:id", middleware.RequireAuth, controllers.CategoryPosts)
}
