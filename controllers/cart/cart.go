package cartControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	orderControllers "github.com/LorinczNorbertAttila/L-and-E/controllers/order"
	"github.com/LorinczNorbertAttila/L-and-E/engine"
)

type cartItemRequest struct {
	UID       string `json:"uid"`
	ProductID string `json:"productId"`
}

type updateQuantityRequest struct {
	UID       string `json:"uid"`
	ProductID string `json:"productId"`
	Change    *int   `json:"change"`
}

type placeOrderRequest struct {
	UID   string   `json:"uid"`
	Total *float64 `json:"total"`
}

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// GET /api/cart/details/:uid
func GetCartDetails(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if !isValidID(uid) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing or invalid uid"})
			return
		}

		detailed, err := e.DetailedCart(c.Request.Context(), uid)
		if err != nil {
			log.Printf("Error fetching cart details: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": detailed})
	}
}

// POST /api/cart/add
func AddToCart(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || !isValidID(req.UID) || !isValidID(req.ProductID) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing or invalid uid/productId"})
			return
		}

		detailed, err := e.Add(c.Request.Context(), req.UID, req.ProductID)
		if err != nil {
			// expected business failures keep the original 500 envelope
			message := "Server error"
			if errors.Is(err, engine.ErrOutOfStock) {
				message = err.Error()
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": detailed})
	}
}

// PATCH /api/cart/update-quantity
func UpdateQuantity(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || !isValidID(req.UID) || !isValidID(req.ProductID) || req.Change == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input"})
			return
		}

		detailed, err := e.UpdateQuantity(c.Request.Context(), req.UID, req.ProductID, *req.Change)
		if err != nil {
			message := "Server error"
			switch {
			case errors.Is(err, engine.ErrOutOfStock),
				errors.Is(err, engine.ErrItemNotInCart),
				errors.Is(err, engine.ErrUserOrProductNotFound):
				message = err.Error()
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": detailed})
	}
}

// DELETE /api/cart/remove
func RemoveFromCart(e *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || !isValidID(req.UID) || !isValidID(req.ProductID) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing data"})
			return
		}

		detailed, err := e.Remove(c.Request.Context(), req.UID, req.ProductID)
		if err != nil {
			message := "Server error"
			if errors.Is(err, engine.ErrProductNotInCart) {
				message = err.Error()
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": detailed})
	}
}

// POST /api/cart/place-order
func PlaceOrder(e *engine.Engine, hub *orderControllers.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || !isValidID(req.UID) || req.Total == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order data"})
			return
		}

		order, detailed, err := e.PlaceOrder(c.Request.Context(), req.UID, *req.Total)
		if err != nil {
			switch {
			case errors.Is(err, engine.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			case errors.Is(err, engine.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
			default:
				// per-line stock detail stays server-side
				log.Printf("Order error: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Order error"})
			}
			return
		}

		hub.BroadcastNewOrder(*order)
		c.JSON(http.StatusCreated, gin.H{"success": true, "cart": detailed})
	}
}
