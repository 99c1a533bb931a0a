// Package validator wires go-playground/validator into echo.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'-]+$`)
	passwordCharset   = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
	lowerPattern      = regexp.MustCompile(`[a-z]`)
	upperPattern      = regexp.MustCompile(`[A-Z]`)
	digitPattern      = regexp.MustCompile(`\d`)
	specialPattern    = regexp.MustCompile(`[@$!%*?&]`)
)

// ValidationError maps request fields to what is wrong with them.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}

		return name
	})

	mustRegister(v, "password", isStrongPassword)
	mustRegister(v, "personname", isPersonName)

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate returns a *ValidationError when i fails its rules.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = errorMessage(fe)
	}

	return &ValidationError{Errors: fields}
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long", fe.Param())
	case "password":
		return "Must contain upper and lower case letters, a digit and one of @$!%*?&"
	case "personname":
		return "May only contain letters, spaces, apostrophes and hyphens"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}

// isStrongPassword requires a lower, an upper, a digit and a special
// character, drawn only from letters, digits and @$!%*?&.
func isStrongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()

	return passwordCharset.MatchString(s) &&
		lowerPattern.MatchString(s) &&
		upperPattern.MatchString(s) &&
		digitPattern.MatchString(s) &&
		specialPattern.MatchString(s)
}

func isPersonName(fl validator.FieldLevel) bool {
	return personNamePattern.MatchString(fl.Field().String())
}
