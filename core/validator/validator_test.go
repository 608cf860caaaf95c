package validator_test

import (
	"testing"

	"garment-stock/core/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Type string `json:"type" validate:"required,garment_type"`
	Size string `json:"size" validate:"garment_size"`
	Qty  int    `json:"qty" validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, validator.ValidateStruct(&request{Type: "Pants", Size: "32", Qty: 1}))
	})

	t.Run("CaseInsensitiveType", func(t *testing.T) {
		assert.Empty(t, validator.ValidateStruct(&request{Type: "shirt", Size: "xl", Qty: 2}))
	})

	t.Run("MissingType", func(t *testing.T) {
		errs := validator.ValidateStruct(&request{Size: "M", Qty: 1})
		require.NotEmpty(t, errs)
		assert.Equal(t, "type", errs[0].FailedField)
		assert.Equal(t, "required", errs[0].Tag)
	})

	t.Run("SizeNotOfferedForType", func(t *testing.T) {
		errs := validator.ValidateStruct(&request{Type: "Pants", Size: "33", Qty: 1})
		require.Len(t, errs, 1)
		assert.Equal(t, "size", errs[0].FailedField)
		assert.Equal(t, "garment_size", errs[0].Tag)
	})

	t.Run("NonPositiveQty", func(t *testing.T) {
		errs := validator.ValidateStruct(&request{Type: "Shirt", Size: "M", Qty: 0})
		require.Len(t, errs, 1)
		assert.Equal(t, "qty", errs[0].FailedField)
		assert.Equal(t, "gt", errs[0].Tag)
		assert.Equal(t, "0", errs[0].Value)
	})

	t.Run("NotAStruct", func(t *testing.T) {
		errs := validator.ValidateStruct(42)
		require.Len(t, errs, 1)
		assert.Equal(t, "struct", errs[0].Tag)
	})
}
