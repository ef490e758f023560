package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paygate/internal/application/checkout/usecases"
	apperrors "paygate/internal/shared/errors"
	"paygate/internal/shared/logger"
)

// CallbackHandler serves the processor's payment result callback. Responses
// are what the gateway and the shopper's browser expect: a 302 redirect on a
// processed callback, plain text with a terminal status otherwise.
type CallbackHandler struct {
	handleCallback *usecases.HandleCallbackUseCase
	logger         logger.Interface
}

func NewCallbackHandler(handleCallback *usecases.HandleCallbackUseCase, log logger.Interface) *CallbackHandler {
	return &CallbackHandler{handleCallback: handleCallback, logger: log}
}

func (h *CallbackHandler) Handle(c *gin.Context) {
	cmd := usecases.HandleCallbackCommand{
		CallbackKey: c.Param("callback_key"),
		Token:       c.Query("token"),
	}

	result, err := h.handleCallback.Execute(c.Request.Context(), cmd)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			c.String(appErr.Code, appErr.Message)
			return
		}
		h.logger.Errorw("callback processing failed", "error", err)
		c.String(http.StatusInternalServerError, "Error processing callback")
		return
	}

	c.Redirect(http.StatusFound, result.RedirectURL)
}
