package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ErrNotFound is what every unresolved lookup in this package wraps,
// callers match it with errors.Is.
var ErrNotFound = gorm.ErrRecordNotFound

// ValidationError maps the offending input fields to a message each.
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for key := range v.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, v.Fields[key]))
	}
	return "invalid input, " + strings.Join(parts, "; ")
}

func (v *ValidationError) Add(field, message string) {
	if v.Fields == nil {
		v.Fields = make(map[string]string)
	}
	if _, exists := v.Fields[field]; !exists {
		v.Fields[field] = message
	}
}

func (v *ValidationError) OrNil() error {
	if v == nil || len(v.Fields) == 0 {
		return nil
	}
	return v
}

func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	instance := validator.New(validator.WithRequiredStructEnabled())
	instance.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return instance
}

// CollectValidation starts the field errors of a submission from its struct
// tags. Failures that are not about the input itself come back as err.
func CollectValidation(in any) (*ValidationError, error) {
	err := ValidateStruct(in)
	if err == nil {
		return &ValidationError{}, nil
	}
	if verr, ok := AsValidationError(err); ok {
		return verr, nil
	}
	return nil, err
}

// ValidateStruct runs the struct tags and folds the failures into a ValidationError.
func ValidateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}

	verr := &ValidationError{}
	for _, failure := range failures {
		verr.Add(failure.Field(), describeFailure(failure))
	}
	return verr
}

func describeFailure(failure validator.FieldError) string {
	switch failure.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", failure.Param())
	case "min":
		return fmt.Sprintf("ensure this value has at least %s characters", failure.Param())
	default:
		return fmt.Sprintf("failed on the %s rule", failure.Tag())
	}
}
