package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "pustakaku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(api, db)

	log.Println("[INFO] Setting up LibraryRoutes...")
	routeDetails.LibraryRoutes(api, db)
}
