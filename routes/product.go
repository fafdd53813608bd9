package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/LorinczNorbertAttila/L-and-E/controllers/product"
	"github.com/LorinczNorbertAttila/L-and-E/middleware"
)

// SetupProductRoutes registers the public catalog endpoints and the
// admin-only import/export endpoints.
func SetupProductRoutes(api *gin.RouterGroup, deps *Deps) {
	productGroup := api.Group("/products")
	{
		productGroup.GET("/", productControllers.GetProducts(deps.DB, deps.Cache))
		productGroup.GET("/:id", productControllers.GetProductByID(deps.DB))
	}

	adminGroup := api.Group("/products")
	adminGroup.Use(middleware.RequireAdmin(deps.Auth))
	{
		adminGroup.POST("/process-file", productControllers.ProcessFile())
		adminGroup.POST("/upload", productControllers.UploadProducts(deps.DB, deps.Cache))
		adminGroup.GET("/export", productControllers.ExportProductsExcel(deps.DB))
	}

	api.GET("/categories", productControllers.GetCategories(deps.DB))
}
