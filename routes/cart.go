package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/LorinczNorbertAttila/L-and-E/controllers/cart"
)

// SetupCartRoutes registers the /api/cart endpoints backed by the cart and
// order engines.
func SetupCartRoutes(api *gin.RouterGroup, deps *Deps) {
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("/details/:uid", cartControllers.GetCartDetails(deps.Engine))
		cartGroup.POST("/add", cartControllers.AddToCart(deps.Engine))
		cartGroup.PATCH("/update-quantity", cartControllers.UpdateQuantity(deps.Engine))
		cartGroup.DELETE("/remove", cartControllers.RemoveFromCart(deps.Engine))
		cartGroup.POST("/place-order", cartControllers.PlaceOrder(deps.Engine, deps.Hub))
	}
}
