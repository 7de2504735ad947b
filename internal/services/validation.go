// internal/services/validation.go
package services

import (
	"github.com/fgomes/stockroom-backend/internal/apperrors"
	"github.com/fgomes/stockroom-backend/internal/utils"
)

// validateRequest runs struct validation and folds the first failure
// into the domain error taxonomy.
func validateRequest(req interface{}) error {
	err := utils.ValidateStruct(req)
	if err == nil {
		return nil
	}

	fieldErrors := utils.GetValidationErrors(err)
	if len(fieldErrors) == 0 {
		return &apperrors.ValidationError{Reason: err.Error()}
	}

	first := fieldErrors[0]
	return &apperrors.ValidationError{
		Field:  first.Field,
		Reason: first.Message,
	}
}
