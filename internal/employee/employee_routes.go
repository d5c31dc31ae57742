package employee

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
	authn := middleware.Authenticate()
	principal := middleware.LoadPrincipal(src)

	// Registration and roster reads are public; the frontend calls them
	// before a session exists.
	users := r.Group("/users")
	{
		users.POST("", middleware.RateLimitByIP(1, 5), handler.Register)
		users.GET("", handler.List)
		users.GET("/:email", handler.GetByEmail)
		users.GET("/:email/role", handler.GetRole)
	}

	r.GET("/employees", handler.ListEmployees)
	r.GET("/verified-users",
		authn, principal,
		middleware.Authorize(rbacService, rbac.ResourceEmployee, rbac.ActionListVerified),
		handler.ListVerified,
	)

	adminManage := middleware.Authorize(rbacService, rbac.ResourceEmployee, rbac.ActionManage)

	r.PATCH("/users/role/:id", authn, principal, adminManage, handler.ChangeRole)
	r.PATCH("/make-hr/:id", authn, principal, adminManage, handler.MakeHR)
	r.PATCH("/users/verify/:id",
		authn, principal,
		middleware.Authorize(rbacService, rbac.ResourceEmployee, rbac.ActionVerify),
		handler.SetVerification,
	)
	r.PATCH("/fire-user/:id", authn, principal, adminManage, handler.Terminate)
	r.PATCH("/update-salary/:id",
		authn, principal, adminManage,
		middleware.RateLimitByUser(1, 3),
		handler.UpdateSalary,
	)
	r.DELETE("/users/:id", authn, principal, adminManage, handler.Delete)
}
