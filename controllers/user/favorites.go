package userControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store"
)

type favoriteRequest struct {
	UID       string `json:"uid"`
	ProductID string `json:"productId"`
}

// GET /api/user/favorites/:uid
// Returns the user's favorites joined with full product records; entries
// whose product vanished are dropped, same as the cart projection.
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if strings.TrimSpace(uid) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing UID"})
			return
		}

		var favorites []models.Favorite
		if err := db.Where("user_id = ?", uid).Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		ids := make([]string, 0, len(favorites))
		for _, fav := range favorites {
			ids = append(ids, fav.ProductID)
		}

		products := []models.Product{}
		for _, chunk := range store.ChunkIDs(ids, store.ChunkSize) {
			var part []models.Product
			if err := db.Where("id IN ?", chunk).Find(&part).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
				return
			}
			products = append(products, part...)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}

// POST /api/user/favorites
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req favoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing data"})
			return
		}

		favorite := models.Favorite{UserID: req.UID, ProductID: req.ProductID}
		err := db.Where("user_id = ? AND product_id = ?", req.UID, req.ProductID).
			FirstOrCreate(&favorite).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorite added"})
	}
}

// DELETE /api/user/favorites
func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req favoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing data"})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", req.UID, req.ProductID).
			Delete(&models.Favorite{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Favorite not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorite removed"})
	}
}
