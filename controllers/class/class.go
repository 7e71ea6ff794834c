package classController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"visualearn/middleware"
	"visualearn/models"
	"visualearn/utils"
)

type ClassController struct {
	Db *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{Db: db}
}

// GetAllClasses returns every class regardless of status
func (cc *ClassController) GetAllClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := cc.Db.Find(&classes).Error; err != nil {
		log.Printf("Error fetching classes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return c.JSON(classes)
}

// CreateClass adds a new class listing. The instructor role gate runs before
// this handler; new classes always start out pending.
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*models.Class)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newClass := models.Class{
		Name:            reqData.Name,
		Image:           reqData.Image,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
		Price:           reqData.Price,
		AvailableSeats:  reqData.AvailableSeats,
		Status:          models.ClassStatusPending,
	}

	if err := cc.Db.Create(&newClass).Error; err != nil {
		log.Printf("Error saving class to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created successfully.", newClass)
}

// UpdateClass merges the provided fields into an existing class.
// Fields absent from the body keep their stored values.
func (cc *ClassController) UpdateClass(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	var class models.Class
	if err := cc.Db.First(&class, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		log.Printf("Error fetching class %d: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class!", nil)
	}

	reqData := new(struct {
		Name           string  `json:"name"`
		Image          string  `json:"image"`
		Price          float64 `json:"price"`
		AvailableSeats int     `json:"availableSeats"`
		Status         string  `json:"status"`
		Feedback       string  `json:"feedback"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		class.Name = reqData.Name
	}
	if reqData.Image != "" {
		class.Image = reqData.Image
	}
	if reqData.Price > 0 {
		class.Price = reqData.Price
	}
	if reqData.AvailableSeats > 0 {
		class.AvailableSeats = reqData.AvailableSeats
	}
	if reqData.Status != "" {
		class.Status = reqData.Status
	}
	if reqData.Feedback != "" {
		class.Feedback = reqData.Feedback
	}

	if err := cc.Db.Save(&class).Error; err != nil {
		log.Printf("Error updating class %d: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully.", class)
}

// DeleteClass removes a class by id
func (cc *ClassController) DeleteClass(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)

	result := cc.Db.Unscoped().Where("id = ?", classID).Delete(&models.Class{})
	if result.Error != nil {
		log.Printf("Error deleting class %d: %v", classID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class deleted successfully.", fiber.Map{
		"deletedCount": result.RowsAffected,
	})
}

// ApproveClass marks a class approved and notifies its instructor
func (cc *ClassController) ApproveClass(c *fiber.Ctx) error {
	return cc.setStatus(c, models.ClassStatusApproved, "Class approved!")
}

// DenyClass marks a class denied and notifies its instructor
func (cc *ClassController) DenyClass(c *fiber.Ctx) error {
	return cc.setStatus(c, models.ClassStatusDenied, "Class denied!")
}

func (cc *ClassController) setStatus(c *fiber.Ctx, status, message string) error {
	classID := c.Locals("classID").(int)

	var class models.Class
	if err := cc.Db.First(&class, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		log.Printf("Error fetching class %d: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class!", nil)
	}

	if err := cc.Db.Model(&class).Update("status", status).Error; err != nil {
		log.Printf("Error updating class %d status: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class status!", nil)
	}

	// Notify Instructor (Async)
	go func(class models.Class, status string) {
		if err := utils.SendClassStatusEmail(class.InstructorEmail, class.InstructorName, class.Name, status, ""); err != nil {
			log.Printf("Error sending status email for class %d: %v", class.ID, err)
		}
	}(class, status)

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"modifiedCount": 1,
	})
}

// SendFeedback attaches admin feedback to a class and notifies its instructor
func (cc *ClassController) SendFeedback(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)
	feedback := c.Locals("validatedFeedback").(string)

	var class models.Class
	if err := cc.Db.First(&class, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		log.Printf("Error fetching class %d: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class!", nil)
	}

	if err := cc.Db.Model(&class).Update("feedback", feedback).Error; err != nil {
		log.Printf("Error saving feedback for class %d: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save feedback!", nil)
	}

	go func(class models.Class, feedback string) {
		if err := utils.SendClassStatusEmail(class.InstructorEmail, class.InstructorName, class.Name, class.Status, feedback); err != nil {
			log.Printf("Error sending feedback email for class %d: %v", class.ID, err)
		}
	}(class, feedback)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback sent successfully.", fiber.Map{
		"modifiedCount": 1,
	})
}
