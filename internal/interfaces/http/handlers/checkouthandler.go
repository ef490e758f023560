package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paygate/internal/application/checkout/usecases"
	"paygate/internal/shared/logger"
	"paygate/internal/shared/utils"
)

type CheckoutHandler struct {
	generateURL *usecases.GenerateCheckoutURLUseCase
	logger      logger.Interface
}

func NewCheckoutHandler(generateURL *usecases.GenerateCheckoutURLUseCase, log logger.Interface) *CheckoutHandler {
	return &CheckoutHandler{generateURL: generateURL, logger: log}
}

// GenerateURL builds the hosted payment page URL for an order.
func (h *CheckoutHandler) GenerateURL(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || orderID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order")
		return
	}

	result, err := h.generateURL.Execute(c.Request.Context(), usecases.GenerateCheckoutURLCommand{
		OrderID: uint(orderID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "checkout URL generated", result)
}
