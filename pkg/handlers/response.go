package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mimic-data/mimic-engine/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteGenerationError maps generation errors onto HTTP responses. Known
// validation sentinels become 400s; everything else is a 500.
func WriteGenerationError(w http.ResponseWriter, err error) error {
	for _, sentinel := range []error{
		apperrors.ErrInvalidSchema,
		apperrors.ErrInvalidDateRange,
		apperrors.ErrInvalidCount,
		apperrors.ErrInvalidRate,
		apperrors.ErrDimensionMismatch,
		apperrors.ErrUnsupportedFormat,
		apperrors.ErrNoUsers,
		apperrors.ErrNoProducts,
		apperrors.ErrNoOrders,
	} {
		if errors.Is(err, sentinel) {
			return ErrorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
		}
	}
	return ErrorResponse(w, http.StatusInternalServerError, "internal_error", "generation failed")
}
