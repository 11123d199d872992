package vat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWithholding_Goods(t *testing.T) {
	amount, applied := ComputeWithholding(WithholdingGoods, dec("10000"))
	assert.True(t, applied, "threshold is inclusive")
	assert.True(t, amount.Equal(dec("200")))

	_, applied = ComputeWithholding(WithholdingGoods, dec("9999.99"))
	assert.False(t, applied)
}

func TestComputeWithholding_Services(t *testing.T) {
	amount, applied := ComputeWithholding(WithholdingServices, dec("4500"))
	assert.True(t, applied)
	assert.True(t, amount.Equal(dec("90")))

	amount, applied = ComputeWithholding(WithholdingServices, dec("2999"))
	assert.False(t, applied)
	assert.True(t, amount.IsZero())
}

func TestComputeWithholding_UnknownKind(t *testing.T) {
	_, applied := ComputeWithholding(WithholdingKind("rent"), dec("100000"))
	assert.False(t, applied)
	assert.False(t, WithholdingKind("rent").Valid())
	assert.True(t, WithholdingGoods.Valid())
}
