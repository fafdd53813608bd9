package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/LorinczNorbertAttila/L-and-E/controllers/user"
)

// SetupUserRoutes registers profile, cart-merge and favorites endpoints.
func SetupUserRoutes(api *gin.RouterGroup, deps *Deps) {
	userGroup := api.Group("/user")
	{
		userGroup.GET("/profile/:uid", userControllers.GetProfile(deps.DB))
		userGroup.GET("/exists/:uid", userControllers.UserExists(deps.DB))
		userGroup.POST("/create", userControllers.CreateUser(deps.DB))
		userGroup.POST("/merge-cart", userControllers.MergeCart(deps.Store))
		userGroup.PATCH("/set-field", userControllers.SetField(deps.DB))

		userGroup.GET("/favorites/:uid", userControllers.GetFavorites(deps.DB))
		userGroup.POST("/favorites", userControllers.AddFavorite(deps.DB))
		userGroup.DELETE("/favorites", userControllers.RemoveFavorite(deps.DB))
	}
}
