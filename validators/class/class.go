package classValidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"visualearn/middleware"
	"visualearn/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateClass validates a new class listing
func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Class)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.InstructorEmail = strings.TrimSpace(reqData.InstructorEmail)

		if reqData.Name == "" {
			errors["name"] = "Class name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Class name must be at least 3 characters long!"
		}

		if reqData.InstructorEmail == "" {
			errors["instructorEmail"] = "Instructor email is required!"
		} else if !emailRegex.MatchString(reqData.InstructorEmail) {
			errors["instructorEmail"] = "Instructor email format is invalid!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if reqData.AvailableSeats <= 0 {
			errors["availableSeats"] = "Available seats must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// Feedback validates admin feedback before it is attached to a class
func Feedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Feedback string `json:"feedback"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Feedback = strings.TrimSpace(reqData.Feedback)
		if reqData.Feedback == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"feedback": "Feedback is required!",
			})
		}

		c.Locals("validatedFeedback", reqData.Feedback)
		return c.Next()
	}
}

// ValidateClassID rejects malformed :id params before they reach a handler
func ValidateClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classIDStr := strings.TrimSpace(c.Params("id"))
		if classIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Class ID is required!", nil)
		}

		classID, err := strconv.Atoi(classIDStr)
		if err != nil || classID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Class ID!", nil)
		}

		c.Locals("classID", classID)
		return c.Next()
	}
}
