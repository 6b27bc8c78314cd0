package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	studioerrors "github.com/alexisbeaulieu97/sitestudio/pkg/errors"
)

// ValidateStruct runs the shared validator and converts the first failure into a ValidationError.
func ValidateStruct(value any) error {
	return ConvertValidationError(validatorInstance().Struct(value))
}

// ConvertValidationError maps validator failures onto the studio error taxonomy.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return studioerrors.NewValidationError(field, msg, err)
	}

	return studioerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	// Drop the root type name; callers already know what they validated.
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
