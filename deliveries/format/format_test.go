package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "R$ 1234,50", Currency(1234.5))
	assert.Equal(t, "R$ 0,00", Currency(0))
	assert.Equal(t, "R$ 15,90", Currency("15.90"))
	assert.Equal(t, "R$ 2,00", Currency(2))
}

func TestCurrencyFallsBackOnBadInput(t *testing.T) {
	assert.Equal(t, "R$ 0,00", Currency("abacaxi"))
	assert.Equal(t, "R$ 0,00", Currency(nil))
	assert.Equal(t, "R$ 0,00", Currency(struct{}{}))
}

func TestMultiply(t *testing.T) {
	assert.InDelta(t, 31.80, Multiply(15.90, 2), 0.0001)
	assert.InDelta(t, 31.80, Multiply("15.90", "2"), 0.0001)
	assert.Zero(t, Multiply("abc", 2))
	assert.Zero(t, Multiply(nil, nil))
}
