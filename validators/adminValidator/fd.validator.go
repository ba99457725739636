package adminValidator

import (
	"github.com/Deva1502/kono-banking-application-main/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type FixedDepositRequest struct {
	UserID uint    `json:"user_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreateFixedDeposit validates the back-office FD payload.
func CreateFixedDeposit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FixedDepositRequest
		if err := c.BodyParser(&body); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "Invalid request format",
			})
		}
		if err := validate.Struct(&body); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				errorMap := make(map[string]string)
				for _, e := range errs {
					errorMap[e.Field()] = e.Error()
				}
				return middleware.ValidationErrorResponse(c, errorMap)
			}
			return middleware.ValidationErrorResponse(c, map[string]string{
				"error": err.Error(),
			})
		}
		return c.Next()
	}
}
