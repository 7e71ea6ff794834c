package authController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"visualearn/middleware"
)

// IssueToken exchanges a signed-in identity for a bearer token.
// The frontend calls this right after its own sign-in flow completes.
func IssueToken(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return c.JSON(fiber.Map{"token": token})
}
