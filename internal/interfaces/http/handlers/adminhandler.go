package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paygate/internal/application/admin/usecases"
	"paygate/internal/shared/logger"
	"paygate/internal/shared/utils"
)

type AdminHandler struct {
	login          *usecases.LoginUseCase
	getSettings    *usecases.GetCheckoutSettingsUseCase
	updateSettings *usecases.UpdateCheckoutSettingsUseCase
	logger         logger.Interface
}

func NewAdminHandler(
	login *usecases.LoginUseCase,
	getSettings *usecases.GetCheckoutSettingsUseCase,
	updateSettings *usecases.UpdateCheckoutSettingsUseCase,
	log logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		login:          login,
		getSettings:    getSettings,
		updateSettings: updateSettings,
		logger:         log,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var cmd usecases.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.login.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

func (h *AdminHandler) GetCheckoutSettings(c *gin.Context) {
	result, err := h.getSettings.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AdminHandler) UpdateCheckoutSettings(c *gin.Context) {
	var cmd usecases.UpdateCheckoutSettingsCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateSettings.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "settings updated", nil)
}
