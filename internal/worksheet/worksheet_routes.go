package worksheet

import (
	"github.com/rifatalam240/Employee-Management-System-Server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, src middleware.PrincipalSource) {
	works := r.Group("/works", middleware.Authenticate(), middleware.LoadPrincipal(src))
	{
		works.POST("", handler.Submit)
		works.GET("", handler.List)
		works.PATCH("/:id", handler.Update)
		works.DELETE("/:id", handler.Delete)
	}
}
