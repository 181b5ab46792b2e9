package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"socialnet/initializers"
	"socialnet/middleware"
	"socialnet/routes"
)

func init() {
	config, err := initializers.LoadConfig(".")
	if err != nil {
		log.Fatalln("Failed to load environment variables!", err.Error())
	}
	initializers.ConnectDB(&config)
}

func main() {
	config, err := initializers.LoadConfig(".")
	if err != nil {
		log.Fatalln("Failed to load environment variables!", err.Error())
	}

	if err := initializers.Migrate(); err != nil {
		log.Fatalln("Migration failed:", err)
	}

	engine := html.New("./templates", ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Use(logger.New())
	app.Use(middleware.DeserializeUser)

	app.Static("/public", "./public")
	app.Static("/media", config.IMGStorePath)

	routes.SetupAuthRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupPostRoutes(app)
	routes.NotFoundRoute(app)

	log.Fatal(app.Listen(":" + config.ServerPort))
}
