package selectionRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	selectionControllers "visualearn/controllers/selection"
	selectionValidators "visualearn/validators/selection"
)

func SetupSelectionRoutes(app *fiber.App, db *gorm.DB) {
	controller := selectionControllers.NewSelectionController(db)

	selectionGroup := app.Group("/selectedClass")

	selectionGroup.Post("/", selectionValidators.CreateSelection(), controller.CreateSelection)
	selectionGroup.Get("/", controller.GetAllSelections)
	selectionGroup.Get("/:id", selectionValidators.ValidateSelectionID(), controller.GetSelection)
	selectionGroup.Delete("/:id", selectionValidators.ValidateSelectionID(), controller.DeleteSelection)
}
