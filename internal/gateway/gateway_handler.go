package gateway

import (
	"net/http"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/apperror"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gateway Gateway
}

func NewHandler(gateway Gateway) *Handler {
	return &Handler{gateway: gateway}
}

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	intent, err := h.gateway.CreateIntent(c.Request.Context(), req.Amount*100, req.Currency)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusCreated, CreateIntentResponse{
		Reference:    intent.Reference,
		ClientSecret: intent.ClientSecret,
	}, nil)
}
