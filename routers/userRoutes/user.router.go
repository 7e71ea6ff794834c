package userRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userControllers "visualearn/controllers/user"
	"visualearn/middleware"
	userValidators "visualearn/validators/user"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	controller := userControllers.NewUserController(db)

	userGroup := app.Group("/users")

	userGroup.Get("/", controller.GetAllUsers)
	userGroup.Post("/", userValidators.CreateUser(), controller.CreateUser)

	// Role checks: the token claim must match the path email, otherwise the
	// answer is a plain false.
	userGroup.Get("/instructor/:email", middleware.JWTMiddleware, controller.IsInstructor)
	userGroup.Get("/admin/:email", middleware.JWTMiddleware, controller.IsAdmin)

	// TODO: the promotion routes below carry no auth, matching the contract
	// the existing admin dashboard was built against. Guard them once the
	// dashboard sends bearer tokens on PATCH.
	userGroup.Patch("/instructor/:id", userValidators.ValidateUserID(), controller.PromoteToInstructor)
	userGroup.Patch("/admin/:id", userValidators.ValidateUserID(), controller.PromoteToAdmin)

	userGroup.Delete("/:id", userValidators.ValidateUserID(), controller.DeleteUser)
}
