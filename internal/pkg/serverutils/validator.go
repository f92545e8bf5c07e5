package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"nota-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts the first failure
// into a field-level validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	first := errs[0]
	field := strings.ToLower(first.Field())
	return apperror.ValidationFailed(field, fmt.Sprintf("field %s failed on rule %s", field, first.Tag()))
}
