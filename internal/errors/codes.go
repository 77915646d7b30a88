package errors

// Error code constants returned in the "error" field of error responses.
// Format: CATEGORY_SPECIFIC_DETAIL. The frontend maps these to UI messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized = "AUTH_UNAUTHORIZED"  // login required
	AuthTokenExpired = "AUTH_TOKEN_EXPIRED" // token expired
	AuthTokenInvalid = "AUTH_TOKEN_INVALID" // malformed or bad signature

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // bad request payload
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // non-numeric path id
	ValidationRequired     = "VALIDATION_REQUIRED"      // required field missing

	// ==================== Cart (CART_) ====================
	CartNotFound     = "CART_NOT_FOUND"      // no cart for owner
	CartItemNotFound = "CART_ITEM_NOT_FOUND" // product not in cart
	CartEmpty        = "CART_EMPTY"          // operation needs a non-empty cart

	// ==================== Order (ORDER_) ====================
	OrderNotFound        = "ORDER_NOT_FOUND"        // order absent or other owner
	OrderAddressRequired = "ORDER_ADDRESS_REQUIRED" // incomplete shipping address

	// ==================== Catalog (CATALOG_) ====================
	CatalogProductNotFound = "CATALOG_PRODUCT_NOT_FOUND" // upstream 404
	CatalogUnavailable     = "CATALOG_UNAVAILABLE"       // upstream failure

	// ==================== Payment (PAYMENT_) ====================
	PaymentFailed      = "PAYMENT_FAILED"      // processor rejected the request
	PaymentUnavailable = "PAYMENT_UNAVAILABLE" // processor unreachable

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // unclassified failure
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // persistence failure
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // external API failure
)
