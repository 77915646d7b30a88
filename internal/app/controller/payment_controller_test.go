package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/storefront-api/internal/app/repository"
	"github.com/openshelf/storefront-api/internal/app/service"
	"github.com/openshelf/storefront-api/internal/db"
	"github.com/openshelf/storefront-api/pkg/payment/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPaymentControllerTest(t *testing.T, handler http.HandlerFunc) (*PaymentController, *gin.Engine, service.CartService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := stripe.NewClient(stripe.Config{
		SecretKey: "sk_test_123",
		BaseURL:   server.URL,
		Currency:  "usd",
	})
	require.NoError(t, err)

	cartRepo := repository.NewCartRepository(testDB)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(client, cartRepo)
	paymentController := NewPaymentController(paymentService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return paymentController, router, cartService
}

func TestPaymentController_CreatePaymentIntent_Success(t *testing.T) {
	controller, router, cartService := setupPaymentControllerTest(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":            "pi_123",
			"client_secret": "pi_123_secret_abc",
			"amount":        2000,
			"currency":      "usd",
			"status":        "requires_payment_method",
		})
	})

	addCartItem(t, cartService, 1, 101, 10.0, 2)

	router.POST("/orders/create-payment-intent", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.CreatePaymentIntent(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/create-payment-intent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "pi_123_secret_abc", response["client_secret"])
	assert.Equal(t, float64(2000), response["amount"])
	assert.Equal(t, "usd", response["currency"])
}

func TestPaymentController_CreatePaymentIntent_EmptyCart(t *testing.T) {
	controller, router, _ := setupPaymentControllerTest(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("payment provider must not be called for an empty cart")
	})

	router.POST("/orders/create-payment-intent", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.CreatePaymentIntent(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/create-payment-intent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Cart is empty", response["error"])
}

func TestPaymentController_CreatePaymentIntent_ProviderDown(t *testing.T) {
	controller, router, cartService := setupPaymentControllerTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"type":    "invalid_request_error",
				"message": "Invalid API Key provided",
			},
		})
	})

	addCartItem(t, cartService, 1, 101, 10.0, 2)

	router.POST("/orders/create-payment-intent", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		controller.CreatePaymentIntent(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/create-payment-intent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPaymentController_CreatePaymentIntent_Unauthorized(t *testing.T) {
	controller, router, _ := setupPaymentControllerTest(t, func(w http.ResponseWriter, r *http.Request) {})

	router.POST("/orders/create-payment-intent", controller.CreatePaymentIntent)

	req := httptest.NewRequest(http.MethodPost, "/orders/create-payment-intent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
