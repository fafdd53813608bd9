package orderControllers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store"
)

const maxPageSize = 100

type orderUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Tel     string `json:"tel"`
	Address string `json:"address"`
}

type orderItemDetails struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unitPrice"`
	Product   *models.Product `json:"product"`
}

type orderDetails struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Total     float64            `json:"total"`
	Status    models.OrderStatus `json:"status"`
	CreatedAt string             `json:"createdAt"`
	User      *orderUser         `json:"user"`
	Items     []orderItemDetails `json:"items"`
}

// parseListQuery clamps pagination params and resolves the age filter to a
// created-at threshold. A zero time means no threshold.
func parseListQuery(pageStr, limitStr, filter string, now time.Time) (page, limit int, threshold time.Time) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(limitStr)
	if limit < 1 {
		limit = 20
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	switch filter {
	case "3months":
		threshold = now.AddDate(0, -3, 0)
	case "6months":
		threshold = now.AddDate(0, -6, 0)
	}
	return page, limit, threshold
}

// GET /api/orders
// Paginated order history joined with user summaries and product records.
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, threshold := parseListQuery(
			c.Query("page"), c.Query("limit"), c.DefaultQuery("filter", "all"), time.Now())

		query := db.Model(&models.Order{})
		if !threshold.IsZero() {
			query = query.Where("created_at >= ?", threshold)
		}

		var totalOrders int64
		if err := query.Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching all orders"})
			return
		}

		var orders []models.Order
		if err := query.
			Preload("Items").
			Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching all orders"})
			return
		}

		usersMap, err := fetchUsers(db, orders)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching all orders"})
			return
		}
		productsMap, err := fetchProducts(db, orders)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching all orders"})
			return
		}

		data := make([]orderDetails, 0, len(orders))
		for _, order := range orders {
			details := orderDetails{
				ID:        order.ID,
				UserID:    order.UserID,
				Total:     order.Total,
				Status:    order.Status,
				CreatedAt: order.CreatedAt.UTC().Format(time.RFC3339),
				Items:     make([]orderItemDetails, 0, len(order.Items)),
			}
			if user, ok := usersMap[order.UserID]; ok {
				details.User = &user
			}
			for _, item := range order.Items {
				line := orderItemDetails{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					UnitPrice: item.UnitPrice,
				}
				if product, ok := productsMap[item.ProductID]; ok {
					line.Product = &product
				}
				details.Items = append(details.Items, line)
			}
			data = append(data, details)
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
			"pagination": gin.H{
				"page":        page,
				"limit":       limit,
				"totalOrders": totalOrders,
				"totalPages":  int(math.Ceil(float64(totalOrders) / float64(limit))),
			},
		})
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/orders/:orderId/status
// Any of the five statuses is reachable from any other; only the value
// itself is validated.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing status."})
			return
		}
		status, ok := mapOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status."})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status."})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated."})
	}
}

func mapOrderStatus(status string) (models.OrderStatus, bool) {
	switch models.OrderStatus(status) {
	case models.OrderStatusProcessing,
		models.OrderStatusInDelivery,
		models.OrderStatusShipped,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled:
		return models.OrderStatus(status), true
	default:
		return "", false
	}
}

func fetchUsers(db *gorm.DB, orders []models.Order) (map[string]orderUser, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, order := range orders {
		if !seen[order.UserID] {
			seen[order.UserID] = true
			ids = append(ids, order.UserID)
		}
	}

	usersMap := make(map[string]orderUser, len(ids))
	if len(ids) == 0 {
		return usersMap, nil
	}

	var users []models.User
	if err := db.Select("id", "name", "email", "tel", "address").
		Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		usersMap[u.ID] = orderUser{ID: u.ID, Name: u.Name, Email: u.Email, Tel: u.Tel, Address: u.Address}
	}
	return usersMap, nil
}

func fetchProducts(db *gorm.DB, orders []models.Order) (map[string]models.Product, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, order := range orders {
		for _, item := range order.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}

	productsMap := make(map[string]models.Product, len(ids))
	for _, chunk := range store.ChunkIDs(ids, store.ChunkSize) {
		var products []models.Product
		if err := db.Where("id IN ?", chunk).Find(&products).Error; err != nil {
			return nil, err
		}
		for _, p := range products {
			productsMap[p.ID] = p
		}
	}
	return productsMap, nil
}
