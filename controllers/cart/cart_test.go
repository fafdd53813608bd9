package cartControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartControllers "github.com/LorinczNorbertAttila/L-and-E/controllers/cart"
	orderControllers "github.com/LorinczNorbertAttila/L-and-E/controllers/order"
	"github.com/LorinczNorbertAttila/L-and-E/engine"
	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store/memstore"
)

func newTestRouter(st *memstore.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := engine.New(st)
	hub := orderControllers.NewHub()

	r := gin.New()
	cart := r.Group("/api/cart")
	cart.GET("/details/:uid", cartControllers.GetCartDetails(e))
	cart.POST("/add", cartControllers.AddToCart(e))
	cart.PATCH("/update-quantity", cartControllers.UpdateQuantity(e))
	cart.DELETE("/remove", cartControllers.RemoveFromCart(e))
	cart.POST("/place-order", cartControllers.PlaceOrder(e, hub))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func seededStore() *memstore.Store {
	st := memstore.New()
	st.SeedUser(models.User{ID: "U1", Email: "u1@example.com"})
	st.SeedProduct(models.Product{ID: "P1", Name: "Azotat", Price: 10, Quantity: 2})
	return st
}

func TestAddMissingFields(t *testing.T) {
	r := newTestRouter(seededStore())

	w, resp := doJSON(t, r, http.MethodPost, "/api/cart/add", map[string]any{"uid": "U1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Missing or invalid uid/productId", resp["message"])
}

func TestAddSuccessAndOutOfStock(t *testing.T) {
	r := newTestRouter(seededStore())
	body := map[string]any{"uid": "U1", "productId": "P1"}

	for i := 0; i < 2; i++ {
		w, resp := doJSON(t, r, http.MethodPost, "/api/cart/add", body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["success"])
		cart := resp["cart"].([]any)
		require.Len(t, cart, 1)
	}

	// business-rule failure rides the legacy 500 envelope
	w, resp := doJSON(t, r, http.MethodPost, "/api/cart/add", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Out of stock", resp["message"])
}

func TestAddUnknownProductIsServerError(t *testing.T) {
	r := newTestRouter(seededStore())

	w, resp := doJSON(t, r, http.MethodPost, "/api/cart/add",
		map[string]any{"uid": "U1", "productId": "ghost"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", resp["message"])
}

func TestUpdateQuantityValidation(t *testing.T) {
	r := newTestRouter(seededStore())

	// change must be present
	w, resp := doJSON(t, r, http.MethodPatch, "/api/cart/update-quantity",
		map[string]any{"uid": "U1", "productId": "P1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid input", resp["message"])
}

func TestUpdateQuantityItemNotInCart(t *testing.T) {
	r := newTestRouter(seededStore())

	w, resp := doJSON(t, r, http.MethodPatch, "/api/cart/update-quantity",
		map[string]any{"uid": "U1", "productId": "P1", "change": 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Item not in cart", resp["message"])
}

func TestUpdateQuantityUnknownUser(t *testing.T) {
	r := newTestRouter(seededStore())

	w, resp := doJSON(t, r, http.MethodPatch, "/api/cart/update-quantity",
		map[string]any{"uid": "ghost", "productId": "P1", "change": 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "User or product not found", resp["message"])
}

func TestRemoveNotInCart(t *testing.T) {
	r := newTestRouter(seededStore())

	w, resp := doJSON(t, r, http.MethodDelete, "/api/cart/remove",
		map[string]any{"uid": "U1", "productId": "P1"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Product not in cart", resp["message"])
}

func TestRemoveSuccess(t *testing.T) {
	r := newTestRouter(seededStore())

	_, _ = doJSON(t, r, http.MethodPost, "/api/cart/add",
		map[string]any{"uid": "U1", "productId": "P1"})
	w, resp := doJSON(t, r, http.MethodDelete, "/api/cart/remove",
		map[string]any{"uid": "U1", "productId": "P1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Empty(t, resp["cart"])
}

func TestCartDetails(t *testing.T) {
	r := newTestRouter(seededStore())

	_, _ = doJSON(t, r, http.MethodPost, "/api/cart/add",
		map[string]any{"uid": "U1", "productId": "P1"})

	w, resp := doJSON(t, r, http.MethodGet, "/api/cart/details/U1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cart := resp["cart"].([]any)
	require.Len(t, cart, 1)
	line := cart[0].(map[string]any)
	assert.Equal(t, 1.0, line["quantity"])
	product := line["product"].(map[string]any)
	assert.Equal(t, "P1", product["id"])
}

func TestCartDetailsInvalidUID(t *testing.T) {
	r := newTestRouter(seededStore())

	w, resp := doJSON(t, r, http.MethodGet, "/api/cart/details/%20", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing or invalid uid", resp["message"])
}

func TestPlaceOrderFlow(t *testing.T) {
	r := newTestRouter(seededStore())

	// unknown user
	w, resp := doJSON(t, r, http.MethodPost, "/api/cart/place-order",
		map[string]any{"uid": "ghost", "total": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", resp["message"])

	// empty cart
	w, resp = doJSON(t, r, http.MethodPost, "/api/cart/place-order",
		map[string]any{"uid": "U1", "total": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty", resp["message"])

	// missing total
	w, resp = doJSON(t, r, http.MethodPost, "/api/cart/place-order",
		map[string]any{"uid": "U1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid order data", resp["message"])

	// success empties the cart
	_, _ = doJSON(t, r, http.MethodPost, "/api/cart/add",
		map[string]any{"uid": "U1", "productId": "P1"})
	w, resp = doJSON(t, r, http.MethodPost, "/api/cart/place-order",
		map[string]any{"uid": "U1", "total": 10})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Empty(t, resp["cart"])
}

func TestPlaceOrderStockDetailSwallowed(t *testing.T) {
	st := seededStore()
	r := newTestRouter(st)

	_, _ = doJSON(t, r, http.MethodPost, "/api/cart/add",
		map[string]any{"uid": "U1", "productId": "P1"})
	// stock disappears before checkout
	st.SeedProduct(models.Product{ID: "P1", Name: "Azotat", Price: 10, Quantity: 0})

	w, resp := doJSON(t, r, http.MethodPost, "/api/cart/place-order",
		map[string]any{"uid": "U1", "total": 10})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Order error", resp["message"])
}
