package router

import (
	"github.com/SaiPranav00/EVMATCHFINAL/internal/middleware"
	"github.com/SaiPranav00/EVMATCHFINAL/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/refresh", handler.RefreshToken)
	users.POST("/logout", handler.Logout, authRequired)

	users.PUT("/:id", handler.UpdateUser, authRequired, middleware.SelfOrAdmin())
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, middleware.SelfOrAdmin())
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupVehicleRoutes(api *echo.Group, handler *rest.VehicleHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	vehicles := api.Group("/vehicles")

	vehicles.GET("", handler.GetAllVehicles)
	vehicles.GET("/:id", handler.GetVehicleByID)
	vehicles.POST("", handler.CreateVehicle, authRequired, adminOnly)
	vehicles.PUT("/:id", handler.UpdateVehicle, authRequired, adminOnly)
	vehicles.DELETE("/:id", handler.DeleteVehicle, authRequired, adminOnly)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/vehicles/:id/reviews", handler.GetVehicleReviews)
	api.POST("/vehicles/:id/reviews", handler.CreateReview, authRequired)

	reviews := api.Group("/reviews", authRequired)
	reviews.PUT("/:id", handler.UpdateReview)
	reviews.DELETE("/:id", handler.DeleteReview)
}

func SetupQuizRoutes(api *echo.Group, handler *rest.QuizHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/quiz", handler.SubmitQuiz, authRequired)
	api.GET("/preferences", handler.GetPreferences, authRequired)
	api.PUT("/preferences", handler.UpdatePreferences, authRequired)
	api.GET("/matches", handler.GetMatches, authRequired)
}

func SetupMatchAdminRoutes(api *echo.Group, handler *rest.MatchAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/match", authRequired, adminOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}
