package adminRoutes

import (
	adminController "github.com/Deva1502/kono-banking-application-main/controllers/adminControllers"
	"github.com/Deva1502/kono-banking-application-main/middleware"
	validators "github.com/Deva1502/kono-banking-application-main/validators/adminValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.Admin)

	adminGroup.Get("/users", adminController.ListUsers)
	adminGroup.Post("/fixed-deposit", validators.CreateFixedDeposit(), adminController.CreateFixedDeposit)
}
