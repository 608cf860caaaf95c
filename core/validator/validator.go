// Package validator wraps go-playground/validator with the garment-specific tags
// used by write requests:
//
//   - garment_type: the value names a type known to the catalog.
//   - garment_size: the value is a legal size for the sibling Type field.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"garment-stock/core/catalog"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse describes a single failed rule.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Report json names ("qty") rather than Go names ("Qty").
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	validate.RegisterValidation("garment_type", func(fl validator.FieldLevel) bool {
		_, ok := catalog.CanonicalType(fl.Field().String())
		return ok
	})

	validate.RegisterValidation("garment_size", func(fl validator.FieldLevel) bool {
		parent := fl.Parent()
		if parent.Kind() == reflect.Ptr {
			parent = parent.Elem()
		}
		typeField := parent.FieldByName("Type")
		if !typeField.IsValid() || typeField.Kind() != reflect.String {
			return false
		}
		garmentType, ok := catalog.CanonicalType(typeField.String())
		if !ok {
			return false
		}
		return catalog.IsValidSize(garmentType, fl.Field().String())
	})
}

// ValidateStruct runs the struct tags of data and returns every failed rule.
// A nil result means the value is valid.
func ValidateStruct(data any) []*ErrorResponse {
	var out []*ErrorResponse
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*ErrorResponse{{FailedField: "", Tag: "struct", Value: err.Error()}}
	}
	for _, fe := range verrs {
		out = append(out, &ErrorResponse{
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Value:       fe.Param(),
		})
	}
	return out
}
