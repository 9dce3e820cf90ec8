// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the library's built-in tags it registers "suiaddress", which accepts a
// 0x-prefixed hexadecimal Sui address of up to 32 bytes.
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// suiAddressPattern matches a 0x-prefixed address of 1 to 64 hex digits.
var suiAddressPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]{1,64}$`)

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value '0x' does not meet the requirements for the 'suiaddress' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("suiaddress", isSuiAddress); err != nil {
		panic(err)
	}
}

// isSuiAddress implements the "suiaddress" tag.
func isSuiAddress(fl gvalidator.FieldLevel) bool {
	return suiAddressPattern.MatchString(fl.Field().String())
}

// formatError transforms a raw validator error into a multi-error chain rooted at
// ErrValidationFailed with one message per failing field. Other errors are
// returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
