package dto

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/food-order-service/pkg/util"
)

var validate = validator.New()

// Bind decodes a parsed request payload into a typed DTO and validates it.
// Validation failures carry per-field details.
func Bind(payload map[string]any, dest any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	if err := validate.Struct(dest); err != nil {
		details := map[string]any{}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				details[fe.Field()] = fe.Tag()
			}
		}
		return util.NewValidationError("invalid payload", details)
	}
	return nil
}
