package selectionValidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"visualearn/middleware"
	"visualearn/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateSelection validates an enrollment-intent request
func CreateSelection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Selection)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassID == 0 {
			errors["classId"] = "Class ID is required!"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Email format is invalid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSelection", reqData)
		return c.Next()
	}
}

// ValidateSelectionID rejects malformed :id params before they reach a handler
func ValidateSelectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		selectionIDStr := strings.TrimSpace(c.Params("id"))
		if selectionIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Selection ID is required!", nil)
		}

		selectionID, err := strconv.Atoi(selectionIDStr)
		if err != nil || selectionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Selection ID!", nil)
		}

		c.Locals("selectionID", selectionID)
		return c.Next()
	}
}
