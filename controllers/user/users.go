package userControllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store"
)

// GET /api/user/profile/:uid
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if strings.TrimSpace(uid) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing UID"})
			return
		}

		var user models.User
		err := db.Preload("Cart").Preload("Favorites").First(&user, "id = ?", uid).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	}
}

// GET /api/user/exists/:uid
func UserExists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.Param("uid")
		if strings.TrimSpace(uid) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing UID"})
			return
		}

		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", uid).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "exists": count > 0})
	}
}

type createUserRequest struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	LName    string `json:"lname"`
	PhotoURL string `json:"photoURL"`
}

// POST /api/user/create
// Idempotent: an already existing uid is reported as success.
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createUserRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" || req.Email == "" || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing fields"})
			return
		}

		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", req.UID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "User already exists"})
			return
		}

		user := models.User{
			ID:    req.UID,
			Email: req.Email,
			Name:  strings.TrimSpace(req.LName + " " + req.Name),
			Img:   req.PhotoURL,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User created"})
	}
}

type localCartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Product   *struct {
		ID string `json:"id"`
	} `json:"product"`
}

type mergeCartRequest struct {
	UID       string          `json:"uid"`
	LocalCart []localCartLine `json:"localCart"`
}

// POST /api/user/merge-cart
// Folds an anonymous browser cart into the stored one inside a single
// transaction. Quantities accumulate but are clamped to available stock;
// lines whose product vanished are dropped.
func MergeCart(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req mergeCartRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" || req.LocalCart == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payload"})
			return
		}

		err := s.WithTransaction(c.Request.Context(), func(tx store.Tx) error {
			existing, err := tx.GetCart(req.UID)
			if err != nil {
				return err
			}

			merged := make(map[string]int, len(existing))
			var order []string
			for _, line := range existing {
				merged[line.ProductID] = line.Quantity
				order = append(order, line.ProductID)
			}

			for _, line := range req.LocalCart {
				id := line.ProductID
				if id == "" && line.Product != nil {
					id = line.Product.ID
				}
				if id == "" || line.Quantity <= 0 {
					continue
				}
				product, err := tx.GetProduct(id)
				if err == store.ErrNotFound {
					continue
				}
				if err != nil {
					return err
				}

				requested := merged[id] + line.Quantity
				if requested > product.Quantity {
					requested = product.Quantity
				}
				if requested <= 0 {
					continue
				}
				if _, seen := merged[id]; !seen {
					order = append(order, id)
				}
				merged[id] = requested
			}

			items := make([]models.CartItem, 0, len(merged))
			for _, id := range order {
				if qty, ok := merged[id]; ok && qty > 0 {
					items = append(items, models.CartItem{UserID: req.UID, ProductID: id, Quantity: qty})
				}
			}
			return tx.PutCart(req.UID, items)
		})
		if err != nil {
			log.Printf("Error merging cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart merged"})
	}
}

type setFieldRequest struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Field      string `json:"field"`
	Value      any    `json:"value"`
}

var (
	allowedCollections = map[string]bool{"users": true, "products": true}
	allowedFields      = map[string]bool{"tel": true, "address": true, "cart": true}
)

// PATCH /api/user/set-field
// Narrow field-patch escape hatch kept from the original API; anything
// outside the whitelist is rejected outright.
func SetField(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setFieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payload"})
			return
		}
		if !allowedCollections[req.Collection] || !allowedFields[req.Field] {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Unauthorized field or collection"})
			return
		}

		if req.Collection == "users" && req.Field == "cart" {
			if err := replaceCart(db, req.ID, req.Value); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Field updated"})
			return
		}

		model := any(&models.User{})
		if req.Collection == "products" {
			model = &models.Product{}
		}
		if err := db.Model(model).Where("id = ?", req.ID).Update(req.Field, req.Value).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Field updated"})
	}
}

func replaceCart(db *gorm.DB, uid string, value any) error {
	lines, _ := value.([]any)
	items := make([]models.CartItem, 0, len(lines))
	for _, raw := range lines {
		line, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		productID, _ := line["productId"].(string)
		quantity, _ := line["quantity"].(float64)
		if productID == "" || quantity <= 0 {
			continue
		}
		items = append(items, models.CartItem{UserID: uid, ProductID: productID, Quantity: int(quantity)})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", uid).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
