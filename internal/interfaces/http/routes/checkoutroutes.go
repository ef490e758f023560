package routes

import (
	"github.com/gin-gonic/gin"

	"paygate/internal/interfaces/http/handlers"
	"paygate/internal/interfaces/http/middleware"
)

func RegisterCheckoutRoutes(api *gin.RouterGroup, handler *handlers.CheckoutHandler, authMW *middleware.AdminAuthMiddleware) {
	checkout := api.Group("/checkout")
	checkout.Use(authMW.RequireAuth())
	{
		checkout.POST("/orders/:id/url", handler.GenerateURL)
	}
}
