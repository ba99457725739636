package userRoutes

import (
	userProfileController "github.com/Deva1502/kono-banking-application-main/controllers/userControllers"
	"github.com/Deva1502/kono-banking-application-main/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", userProfileController.GetProfile)
	userGroup.Put("/profile", userProfileController.UpdateProfile)
	userGroup.Get("/transactions", userProfileController.GetTransactions)
	userGroup.Get("/fixed-deposits", userProfileController.GetFixedDeposits)
	userGroup.Get("/atm/:id", userProfileController.GetATMCard)
}
