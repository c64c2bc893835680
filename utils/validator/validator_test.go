package validatorx_test

import (
	"testing"

	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
	"github.com/stretchr/testify/assert"
)

type item struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type request struct {
	ToUserID uint64 `json:"to_user_id" validate:"required"`
	Items    []item `json:"items" validate:"required,min=1,dive"`
}

func TestValidateStruct(t *testing.T) {
	err := validatorx.ValidateStruct(&request{ToUserID: 2, Items: []item{{ProductID: 1, Quantity: 1}}})
	assert.NoError(t, err)

	err = validatorx.ValidateStruct(&request{ToUserID: 2, Items: []item{{ProductID: 1, Quantity: 0}}})
	assert.Error(t, err)
	assert.Contains(t, validatorx.Describe(err), "quantity: gt=0")

	err = validatorx.ValidateStruct(&request{})
	assert.Error(t, err)
	assert.Contains(t, validatorx.Describe(err), "to_user_id: required")
}
