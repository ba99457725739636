package authRoutes

import (
	controllers "github.com/Deva1502/kono-banking-application-main/controllers/auth"
	"github.com/Deva1502/kono-banking-application-main/middleware"
	validators "github.com/Deva1502/kono-banking-application-main/validators/authValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, controllers.Logout)
}
