package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/storefront-api/internal/app/repository"
	"github.com/openshelf/storefront-api/internal/app/service"
	"github.com/openshelf/storefront-api/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartControllerTest(t *testing.T) (*CartController, *gin.Engine, service.CartService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	cartService := service.NewCartService(cartRepo)
	cartController := NewCartController(cartService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return cartController, router, cartService
}

// Helper function to set user ID in context
func setUserIDInContext(c *gin.Context, userID uint) {
	c.Set("user_id", userID)
}

func addCartItem(t *testing.T, cartService service.CartService, userID, productID uint, price float64, quantity int) {
	t.Helper()
	_, err := cartService.AddItem(userID, service.CartItemInput{
		ProductID: productID,
		Title:     "Test Product",
		Price:     price,
		Image:     "https://example.com/image.jpg",
		Quantity:  quantity,
	})
	require.NoError(t, err)
}

func TestCartController_GetCart_Success(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	addCartItem(t, cartService, 1, 101, 10.0, 2)

	router.GET("/cart", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.GetCart(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(20), response["total_amount"])
	items := response["items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestCartController_GetCart_FirstAccessReturnsEmptyCart(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.GET("/cart", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.GetCart(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(0), response["total_amount"])
	items := response["items"].([]interface{})
	assert.Len(t, items, 0)
}

func TestCartController_GetCart_Unauthorized(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.GET("/cart", controller.GetCart)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "User not authenticated", response["error"])
}

func TestCartController_AddToCart_Success(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.POST("/cart", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.AddToCart(c)
	})

	body, _ := json.Marshal(AddToCartRequest{
		ProductID: 101,
		Title:     "Backpack",
		Price:     109.95,
		Image:     "https://example.com/1.jpg",
		Quantity:  2,
	})
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(219.9), response["total_amount"])
}

func TestCartController_AddToCart_DefaultsQuantityToOne(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.POST("/cart", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.AddToCart(c)
	})

	body := `{"product_id": 101, "title": "Backpack", "price": 10.0, "image": "https://example.com/1.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	items := response["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, float64(1), item["quantity"])
	assert.Equal(t, float64(10), response["total_amount"])
}

func TestCartController_AddToCart_InvalidBody(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.POST("/cart", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.AddToCart(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(`{"quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartController_UpdateCartItem_Success(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	addCartItem(t, cartService, 1, 101, 10.0, 2)

	router.PUT("/cart/:productId", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.UpdateCartItem(c)
	})

	req := httptest.NewRequest(http.MethodPut, "/cart/101", bytes.NewBufferString(`{"quantity": 5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(50), response["total_amount"])
}

func TestCartController_UpdateCartItem_InvalidQuantity(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	addCartItem(t, cartService, 1, 101, 10.0, 2)

	router.PUT("/cart/:productId", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.UpdateCartItem(c)
	})

	req := httptest.NewRequest(http.MethodPut, "/cart/101", bytes.NewBufferString(`{"quantity": -1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Invalid quantity", response["error"])
}

func TestCartController_UpdateCartItem_CartNotFound(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.PUT("/cart/:productId", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.UpdateCartItem(c)
	})

	req := httptest.NewRequest(http.MethodPut, "/cart/101", bytes.NewBufferString(`{"quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Cart not found", response["error"])
}

func TestCartController_UpdateCartItem_ItemNotFound(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	addCartItem(t, cartService, 1, 101, 10.0, 2)

	router.PUT("/cart/:productId", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.UpdateCartItem(c)
	})

	req := httptest.NewRequest(http.MethodPut, "/cart/999", bytes.NewBufferString(`{"quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Item not found in cart", response["error"])
}

func TestCartController_RemoveFromCart_Success(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	addCartItem(t, cartService, 1, 101, 10.0, 2)
	addCartItem(t, cartService, 1, 102, 5.0, 1)

	router.DELETE("/cart/:productId", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.RemoveFromCart(c)
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart/101", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(5), response["total_amount"])
}

func TestCartController_RemoveFromCart_AbsentProduct(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	addCartItem(t, cartService, 1, 101, 10.0, 2)

	router.DELETE("/cart/:productId", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.RemoveFromCart(c)
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Removing something not in the cart is not an error
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(20), response["total_amount"])
}

func TestCartController_ClearCart_Success(t *testing.T) {
	controller, router, cartService := setupCartControllerTest(t)

	addCartItem(t, cartService, 1, 101, 10.0, 2)

	router.DELETE("/cart", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.ClearCart(c)
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(0), response["total_amount"])
	items := response["items"].([]interface{})
	assert.Len(t, items, 0)
}

func TestCartController_ClearCart_CartNotFound(t *testing.T) {
	controller, router, _ := setupCartControllerTest(t)

	router.DELETE("/cart", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.ClearCart(c)
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Cart not found", response["error"])
}
