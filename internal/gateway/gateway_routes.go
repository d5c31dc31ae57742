package gateway

import (
	"github.com/rifatalam240/Employee-Management-System-Server/internal/middleware"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	src middleware.PrincipalSource,
) {
	r.POST("/payment-intents",
		middleware.Authenticate(),
		middleware.LoadPrincipal(src),
		middleware.Authorize(rbacService, rbac.ResourceGateway, rbac.ActionCreateIntent),
		handler.CreateIntent,
	)
}
