package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "pustakaku_backend/internals/features/users/user/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	users := userController.NewUserController(db)
	u := api.Group("/users")
	u.Post("/", users.Create)
	u.Get("/", users.List)
}
