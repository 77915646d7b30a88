package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo carries a classified error code and user-facing message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError classifies an unhandled error into a code and a message that is
// safe to surface. Sensitive driver details stay out of the response.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An unexpected error occurred",
		}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    notFoundCode(context),
			Message: notFoundMessage(context),
		}
	}

	// Postgres constraint violations.
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		if strings.Contains(errStr, "user_id") || strings.Contains(errStr, "idx_carts_user_id") {
			// One cart per owner; a concurrent first write raced us.
			return ErrorInfo{
				Code:    InternalDatabaseError,
				Message: "Cart already exists for this user. Please retry",
			}
		}
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The record already exists",
		}
	}

	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	// Network failures talking to the database or an upstream.
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "An external service is unavailable. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: defaultMessage(context),
	}
}

func notFoundCode(context string) string {
	switch {
	case strings.Contains(context, "order"):
		return OrderNotFound
	case strings.Contains(context, "cart"):
		return CartNotFound
	case strings.Contains(context, "product"), strings.Contains(context, "catalog"):
		return CatalogProductNotFound
	default:
		return InternalServerError
	}
}

func notFoundMessage(context string) string {
	switch {
	case strings.Contains(context, "order"):
		return "Order not found"
	case strings.Contains(context, "cart"):
		return "Cart not found"
	case strings.Contains(context, "product"), strings.Contains(context, "catalog"):
		return "Product not found"
	default:
		return "The requested record was not found"
	}
}

func defaultMessage(context string) string {
	switch {
	case strings.Contains(context, "create"):
		return "An error occurred while creating the record. Please try again later"
	case strings.Contains(context, "update"):
		return "An error occurred while updating the record. Please try again later"
	case strings.Contains(context, "delete"):
		return "An error occurred while deleting the record. Please try again later"
	default:
		return "An unexpected error occurred. Please try again later"
	}
}
