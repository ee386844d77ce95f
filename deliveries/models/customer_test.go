package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerPhoneNeedsTenDigits(t *testing.T) {
	customer := Customer{Name: "Maria", Phone: "119999", Email: "maria@email.com", Address: "Rua A"}
	err := customer.Validate()
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "telefone")
}

func TestCustomerPhoneCountsOnlyDigits(t *testing.T) {
	customer := Customer{Name: "Maria", Phone: "(11) 9999-888", Email: "maria@email.com", Address: "Rua A"}
	// 9 digits spread over punctuation still fails
	assert.Error(t, customer.Validate())

	customer.Phone = "(11) 99999-9999"
	assert.NoError(t, customer.Validate())
}
