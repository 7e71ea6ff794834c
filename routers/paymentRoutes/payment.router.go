package paymentRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentControllers "visualearn/controllers/payment"
	"visualearn/middleware"
	"visualearn/utils"
	paymentValidators "visualearn/validators/payment"
)

func SetupPaymentRoutes(app *fiber.App, db *gorm.DB, stripe *utils.StripeClient) {
	controller := paymentControllers.NewPaymentController(db, stripe)

	app.Post("/create-payment-intent", middleware.JWTMiddleware, paymentValidators.CreatePaymentIntent(), controller.CreatePaymentIntent)

	paymentGroup := app.Group("/payments")
	paymentGroup.Get("/", controller.GetAllPayments)
	paymentGroup.Post("/", paymentValidators.CreatePayment(), controller.CreatePayment)
}
