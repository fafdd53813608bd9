package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LorinczNorbertAttila/L-and-E/cache"
	"github.com/LorinczNorbertAttila/L-and-E/models"
)

type uploadRequest struct {
	Products []models.Product `json:"products"`
}

type uploadError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type priceChange struct {
	ID       string  `json:"id"`
	OldPrice float64 `json:"oldPrice"`
	NewPrice float64 `json:"newPrice"`
}

// POST /api/products/upload
// Merges a parsed supplier feed into the catalog: an existing article
// accumulates stock and picks up price/type changes, an unknown article is
// created as-is. Import is the only path that ever increases stock.
func UploadProducts(db *gorm.DB, productCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req uploadRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Products == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token or products"})
			return
		}

		created, updated := 0, 0
		uploadErrors := []uploadError{}
		priceChanges := []priceChange{}

		for _, product := range req.Products {
			var existing models.Product
			err := db.First(&existing, "id = ?", product.ID).Error
			switch {
			case err == gorm.ErrRecordNotFound:
				if err := db.Create(&product).Error; err != nil {
					uploadErrors = append(uploadErrors, uploadError{ID: product.ID, Error: err.Error()})
					continue
				}
				created++
			case err != nil:
				uploadErrors = append(uploadErrors, uploadError{ID: product.ID, Error: err.Error()})
			default:
				updates := map[string]interface{}{
					"quantity": existing.Quantity + product.Quantity,
				}
				if existing.Price != product.Price {
					updates["price"] = product.Price
					priceChanges = append(priceChanges, priceChange{
						ID:       product.ID,
						OldPrice: existing.Price,
						NewPrice: product.Price,
					})
				}
				if existing.Type != product.Type {
					updates["type"] = product.Type
				}
				if err := db.Model(&existing).Updates(updates).Error; err != nil {
					uploadErrors = append(uploadErrors, uploadError{ID: product.ID, Error: err.Error()})
					continue
				}
				updated++
			}
		}

		productCache.Invalidate(c.Request.Context(), catalogCacheKey)

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "Products processed",
			"created":      created,
			"updated":      updated,
			"errors":       uploadErrors,
			"priceChanges": priceChanges,
		})
	}
}
