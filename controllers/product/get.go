package productControllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LorinczNorbertAttila/L-and-E/cache"
	"github.com/LorinczNorbertAttila/L-and-E/models"
)

const (
	catalogCacheKey = "product_catalogue"
	catalogCacheTTL = 5 * time.Minute
)

// GET /api/products
// Unfiltered listings are served through the Redis cache; any filter param
// goes straight to the database.
func GetProducts(db *gorm.DB, productCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		typeStr := c.Query("type")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		inStock := c.Query("in_stock") == "true"
		filtered := search != "" || typeStr != "" || minPriceStr != "" || maxPriceStr != "" || inStock

		if !filtered {
			var cached []models.Product
			if productCache.GetJSON(c.Request.Context(), catalogCacheKey, &cached) {
				c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
				return
			}
		}

		query := db.Model(&models.Product{})
		if search != "" {
			query = query.Where("name ILIKE ?", "%"+search+"%")
		}
		if typeStr != "" {
			categoryType, err := strconv.Atoi(typeStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid type"})
				return
			}
			query = query.Where("type = ?", categoryType)
		}
		if minPriceStr != "" {
			minPrice, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", minPrice)
		}
		if maxPriceStr != "" {
			maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", maxPrice)
		}
		if inStock {
			query = query.Where("quantity > 0")
		}

		var products []models.Product
		if err := query.Order("name ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error while fetching products"})
			return
		}

		if !filtered {
			productCache.SetJSON(c.Request.Context(), catalogCacheKey, products, catalogCacheTTL)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}
