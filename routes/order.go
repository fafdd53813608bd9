package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/LorinczNorbertAttila/L-and-E/controllers/order"
)

// SetupOrderRoutes registers the admin order dashboard endpoints, including
// the websocket feed of newly placed orders.
func SetupOrderRoutes(api *gin.RouterGroup, deps *Deps) {
	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("/", orderControllers.GetAllOrders(deps.DB))
		orderGroup.PATCH("/:orderId/status", orderControllers.UpdateOrderStatus(deps.DB))
		orderGroup.GET("/ws", deps.Hub.Handler)
	}
}
