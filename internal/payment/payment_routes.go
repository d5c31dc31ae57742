package payment

import (
	"github.com/rifatalam240/Employee-Management-System-Server/internal/middleware"
	"github.com/rifatalam240/Employee-Management-System-Server/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	src middleware.PrincipalSource,
	rdb *redis.Client,
) {
	authn := middleware.Authenticate()
	principal := middleware.LoadPrincipal(src)

	r.POST("/payments",
		authn, principal,
		middleware.Authorize(rbacService, rbac.ResourcePayment, rbac.ActionRequest),
		middleware.Idempotency(rdb),
		middleware.RateLimitByUser(5, 10),
		handler.Request,
	)
	r.GET("/payments", authn, principal, handler.List)

	payroll := r.Group("/payroll", authn, principal)
	{
		adminUnpaid := middleware.Authorize(rbacService, rbac.ResourcePayment, rbac.ActionListUnpaid)

		payroll.GET("", adminUnpaid, handler.ListAll)
		payroll.GET("/unpaid", adminUnpaid, handler.ListUnpaid)
		payroll.PATCH("/pay/:id",
			middleware.Authorize(rbacService, rbac.ResourcePayment, rbac.ActionApprove),
			middleware.RateLimitByUser(5, 10),
			handler.Approve,
		)
	}
}
