package paymentValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"visualearn/middleware"
	"visualearn/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreatePaymentIntent validates the price sent to the payment-intent route
func CreatePaymentIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Price <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"price": "Price must be a positive number!",
			})
		}

		c.Locals("validatedPrice", reqData.Price)
		return c.Next()
	}
}

// CreatePayment validates a completed payment record
func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Payment)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Email format is invalid!"
		}

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be a positive number!"
		}

		if strings.TrimSpace(reqData.TransactionID) == "" {
			errors["transactionId"] = "Transaction ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
