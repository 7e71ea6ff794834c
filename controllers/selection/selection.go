package selectionController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"visualearn/middleware"
	"visualearn/models"
)

type SelectionController struct {
	Db *gorm.DB
}

func NewSelectionController(db *gorm.DB) *SelectionController {
	return &SelectionController{Db: db}
}

// CreateSelection records an enrollment intent for a class
func (sc *SelectionController) CreateSelection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSelection").(*models.Selection)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newSelection := models.Selection{
		ClassID: reqData.ClassID,
		Email:   reqData.Email,
	}

	if err := sc.Db.Create(&newSelection).Error; err != nil {
		log.Printf("Error saving selection to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to select class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class selected successfully.", newSelection)
}

// GetAllSelections returns every selection with its class attached
func (sc *SelectionController) GetAllSelections(c *fiber.Ctx) error {
	var selections []models.Selection
	if err := sc.Db.Preload("Class").Find(&selections).Error; err != nil {
		log.Printf("Error fetching selections: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch selections!", nil)
	}

	return c.JSON(selections)
}

// GetSelection returns one selection by id
func (sc *SelectionController) GetSelection(c *fiber.Ctx) error {
	selectionID := c.Locals("selectionID").(int)

	var selection models.Selection
	if err := sc.Db.Preload("Class").First(&selection, selectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Selection not found!", nil)
		}
		log.Printf("Error fetching selection %d: %v", selectionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch selection!", nil)
	}

	return c.JSON(selection)
}

// DeleteSelection removes a selection, either explicitly from the cart or
// by the client after a completed payment
func (sc *SelectionController) DeleteSelection(c *fiber.Ctx) error {
	selectionID := c.Locals("selectionID").(int)

	result := sc.Db.Unscoped().Where("id = ?", selectionID).Delete(&models.Selection{})
	if result.Error != nil {
		log.Printf("Error deleting selection %d: %v", selectionID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete selection!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Selection not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selection removed successfully.", fiber.Map{
		"deletedCount": result.RowsAffected,
	})
}
