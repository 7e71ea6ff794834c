package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "visualearn/controllers/auth"
	authValidators "visualearn/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authValidators.IssueToken(), authControllers.IssueToken)
}
