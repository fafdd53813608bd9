package routes

import (
	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LorinczNorbertAttila/L-and-E/cache"
	orderControllers "github.com/LorinczNorbertAttila/L-and-E/controllers/order"
	"github.com/LorinczNorbertAttila/L-and-E/engine"
	"github.com/LorinczNorbertAttila/L-and-E/store"
)

// Deps carries every collaborator the route handlers need; nothing is
// reached through package globals.
type Deps struct {
	DB     *gorm.DB
	Store  store.Store
	Engine *engine.Engine
	Auth   *auth.Client
	Cache  *cache.Cache
	Hub    *orderControllers.Hub
}

// SetupRoutes is the single entry point that wires up every /api route group.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	api := r.Group("/api")

	SetupCartRoutes(api, deps)
	SetupProductRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupUserRoutes(api, deps)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Backend API is running")
	})
}
