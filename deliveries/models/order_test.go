package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRequiresAtLeastOneProduct(t *testing.T) {
	order := Order{CustomerID: 1, DeliveryAddress: "Rua A"}
	err := order.Validate()
	require.Error(t, err)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "produtos")

	order.Products = ProductList{{Name: "Shampoo", Quantity: 1, Price: 22.90}}
	assert.NoError(t, order.Validate())
}

func TestOrderCalculateTotal(t *testing.T) {
	order := Order{Products: ProductList{
		{Name: "Remédio Dor", Quantity: 2, Price: 15.90},
		{Name: "Shampoo", Quantity: 1, Price: 22.90},
	}}

	total := order.CalculateTotal()
	assert.InDelta(t, 54.70, total, 0.0001)
	assert.InDelta(t, 54.70, order.TotalValue, 0.0001)
}

func TestProductListRoundTripsThroughJSONColumn(t *testing.T) {
	list := ProductList{{Name: "Café", Quantity: 3, Price: 18.50}}

	value, err := list.Value()
	require.NoError(t, err)

	var decoded ProductList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, list, decoded)

	// The column keeps the original field names
	raw, ok := value.([]byte)
	require.True(t, ok)
	var generic []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Contains(t, generic[0], "nome")
	assert.Contains(t, generic[0], "quantidade")
	assert.Contains(t, generic[0], "preco")
}
