package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
	cssIdentPattern = regexp.MustCompile(`^[a-zA-Z_-][a-zA-Z0-9_-]*$`)
)

// cssValueForbidden are characters that would end a declaration or rule, or
// break out of an inline <style> element.
const cssValueForbidden = ";{}<>\\\n\r"

// validatorInstance configures and returns the shared validator instance used across the studio packages.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true // Allow empty if not required
			}
			return cssIdentPattern.MatchString(value)
		})

		_ = v.RegisterValidation("css_value", func(fl validator.FieldLevel) bool {
			return ValidCSSValue(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidCSSIdent reports whether value can be used inside a custom property name.
func ValidCSSIdent(value string) bool {
	return cssIdentPattern.MatchString(value)
}

// ValidCSSValue reports whether value can be written as a custom property
// value without escaping its declaration.
func ValidCSSValue(value string) bool {
	return !strings.ContainsAny(value, cssValueForbidden)
}
