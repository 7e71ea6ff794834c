package classRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classControllers "visualearn/controllers/class"
	"visualearn/middleware"
	"visualearn/models"
	classValidators "visualearn/validators/class"
)

func SetupClassRoutes(app *fiber.App, db *gorm.DB) {
	controller := classControllers.NewClassController(db)

	classGroup := app.Group("/classes")

	classGroup.Get("/", controller.GetAllClasses)
	classGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(db, models.RoleInstructor), classValidators.CreateClass(), controller.CreateClass)

	classGroup.Patch("/:id", classValidators.ValidateClassID(), controller.UpdateClass)
	classGroup.Delete("/:id", classValidators.ValidateClassID(), controller.DeleteClass)

	// Moderation by admin
	classGroup.Patch("/:id/approve", middleware.JWTMiddleware, middleware.RequireRole(db, models.RoleAdmin), classValidators.ValidateClassID(), controller.ApproveClass)
	classGroup.Patch("/:id/deny", middleware.JWTMiddleware, middleware.RequireRole(db, models.RoleAdmin), classValidators.ValidateClassID(), controller.DenyClass)
	classGroup.Patch("/:id/feedback", middleware.JWTMiddleware, middleware.RequireRole(db, models.RoleAdmin), classValidators.ValidateClassID(), classValidators.Feedback(), controller.SendFeedback)
}
