package paymentController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"visualearn/middleware"
	"visualearn/models"
	"visualearn/utils"
)

type PaymentController struct {
	Db     *gorm.DB
	Stripe *utils.StripeClient
}

func NewPaymentController(db *gorm.DB, stripe *utils.StripeClient) *PaymentController {
	return &PaymentController{Db: db, Stripe: stripe}
}

// CreatePaymentIntent stages a payment with the provider and hands the
// client secret back to the caller. Nothing is persisted here; the client
// records the payment with POST /payments once the provider confirms it.
func (pc *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	price := c.Locals("validatedPrice").(float64)

	clientSecret, err := pc.Stripe.CreatePaymentIntent(price)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// GetAllPayments returns every payment record
func (pc *PaymentController) GetAllPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := pc.Db.Find(&payments).Error; err != nil {
		log.Printf("Error fetching payments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return c.JSON(payments)
}

// CreatePayment appends a completed payment record. Records are append-only;
// there is no update or delete path.
func (pc *PaymentController) CreatePayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*models.Payment)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newPayment := models.Payment{
		Email:         reqData.Email,
		Amount:        reqData.Amount,
		Currency:      reqData.Currency,
		TransactionID: reqData.TransactionID,
	}
	if newPayment.Currency == "" {
		newPayment.Currency = "usd"
	}

	if err := pc.Db.Create(&newPayment).Error; err != nil {
		log.Printf("Error saving payment to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment recorded successfully.", newPayment)
}
