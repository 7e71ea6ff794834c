package userController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"visualearn/middleware"
	"visualearn/models"
)

type UserController struct {
	Db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Db: db}
}

// GetAllUsers returns every registered user, unfiltered
func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := uc.Db.Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return c.JSON(users)
}

// CreateUser registers a user unless the email has been seen before
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var reqData models.User

	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Check if email already exists
	if err := uc.Db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "User already exists", nil)
	}

	newUser := models.User{
		Name:  reqData.Name,
		Email: reqData.Email,
		Photo: reqData.Photo,
		Role:  models.RoleStudent,
	}

	if err := uc.Db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// IsInstructor answers whether the path email belongs to an instructor.
// When the path email differs from the verified claim email the answer is
// a plain false, not an error; the dashboard relies on that shape.
func (uc *UserController) IsInstructor(c *fiber.Ctx) error {
	email := c.Params("email")
	claimEmail, _ := c.Locals("email").(string)

	if claimEmail != email {
		return c.JSON(fiber.Map{"instructor": false})
	}

	var user models.User
	if err := uc.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return c.JSON(fiber.Map{"instructor": false})
	}

	return c.JSON(fiber.Map{"instructor": user.Role == models.RoleInstructor})
}

// IsAdmin answers whether the path email belongs to an admin
func (uc *UserController) IsAdmin(c *fiber.Ctx) error {
	email := c.Params("email")
	claimEmail, _ := c.Locals("email").(string)

	if claimEmail != email {
		return c.JSON(fiber.Map{"admin": false})
	}

	var user models.User
	if err := uc.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return c.JSON(fiber.Map{"admin": false})
	}

	return c.JSON(fiber.Map{"admin": user.Role == models.RoleAdmin})
}

// PromoteToInstructor sets the user's role to instructor
func (uc *UserController) PromoteToInstructor(c *fiber.Ctx) error {
	return uc.promote(c, models.RoleInstructor)
}

// PromoteToAdmin sets the user's role to admin
func (uc *UserController) PromoteToAdmin(c *fiber.Ctx) error {
	return uc.promote(c, models.RoleAdmin)
}

func (uc *UserController) promote(c *fiber.Ctx, role string) error {
	userID := c.Locals("userID").(int)

	result := uc.Db.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		log.Printf("Error promoting user %d to %s: %v", userID, role, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated to "+role+".", fiber.Map{
		"modifiedCount": result.RowsAffected,
	})
}

// DeleteUser removes a user permanently. Users are never soft-deleted.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	result := uc.Db.Unscoped().Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		log.Printf("Error deleting user %d: %v", userID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", fiber.Map{
		"deletedCount": result.RowsAffected,
	})
}
