package dashboard

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
	r.GET("/dashboard-summary",
		middleware.Authenticate(),
		middleware.LoadPrincipal(src),
		middleware.Authorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead),
		handler.GetSummary,
	)
}
