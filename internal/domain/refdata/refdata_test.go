package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidBankName(t *testing.T) {
	assert.True(t, ValidBankName("Awash Bank"))
	assert.False(t, ValidBankName("First Imaginary Bank"))
	assert.False(t, ValidBankName(""))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod("Cash"))
	assert.True(t, ValidPaymentMethod("Bank Transfer"))
	assert.False(t, ValidPaymentMethod("Barter"))
}
