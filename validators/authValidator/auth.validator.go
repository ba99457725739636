package authValidator

import (
	"github.com/Deva1502/kono-banking-application-main/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	AcType   string `json:"ac_type" validate:"omitempty,oneof=savings current"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup validates the registration payload before the controller runs.
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SignupRequest
		if err := c.BodyParser(&body); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "Invalid request format",
			})
		}
		if err := validate.Struct(&body); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		return c.Next()
	}
}

// Login validates the login payload.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "Invalid request format",
			})
		}
		if err := validate.Struct(&body); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		return c.Next()
	}
}

func fieldErrors(err error) map[string]string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		errorMap := make(map[string]string)
		for _, e := range errs {
			errorMap[e.Field()] = e.Error()
		}
		return errorMap
	}
	return map[string]string{"error": err.Error()}
}
