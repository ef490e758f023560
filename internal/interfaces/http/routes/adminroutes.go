package routes

import (
	"github.com/gin-gonic/gin"

	"paygate/internal/interfaces/http/handlers"
	"paygate/internal/interfaces/http/middleware"
)

func RegisterAdminRoutes(api *gin.RouterGroup, handler *handlers.AdminHandler, authMW *middleware.AdminAuthMiddleware) {
	api.POST("/admin/login", handler.Login)

	admin := api.Group("/admin")
	admin.Use(authMW.RequireAuth())
	{
		admin.GET("/settings/checkout", handler.GetCheckoutSettings)
		admin.PUT("/settings/checkout", handler.UpdateCheckoutSettings)
	}
}
