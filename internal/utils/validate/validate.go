package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/the127/attestate/internal/utils/modelError"
)

var validate = validator.New()

func Validate(s any) error {
	err := validate.Struct(s)
	if err != nil {
		return fmt.Errorf("%s: %w", err.Error(), modelError.ErrValidation)
	}

	return nil
}
