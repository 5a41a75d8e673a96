package helpers

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground validator with domain rules
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a new custom validator with domain rules
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	// Register custom validators
	v.RegisterValidation("role", validateRole)
	v.RegisterValidation("resource_name", validateResourceName)
	v.RegisterValidation("future", validateFuture)

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// validateRole accepts the two account roles, case insensitive
func validateRole(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "student", "administration":
		return true
	}
	return false
}

var resourceNameRegex = regexp.MustCompile(`^[\pL\pN][\pL\pN\s\-_.,!?']*$`)

// validateResourceName validates names used as natural keys for modules,
// challenges and awards. Leading whitespace would break path routing.
func validateResourceName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name != strings.TrimSpace(name) {
		return false
	}
	return resourceNameRegex.MatchString(name)
}

// validateFuture requires a time.Time field strictly after now
func validateFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}
