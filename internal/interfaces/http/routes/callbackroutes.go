package routes

import (
	"github.com/gin-gonic/gin"

	"paygate/internal/interfaces/http/handlers"
)

// RegisterCallbackRoutes mounts the public processor callback endpoint.
// The path mirrors the integration's historical WooCommerce API route.
func RegisterCallbackRoutes(r *gin.Engine, handler *handlers.CallbackHandler, rateLimit gin.HandlerFunc) {
	r.GET("/wc-api/mmg-checkout/:callback_key", rateLimit, handler.Handle)
}
