package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("  Widget ", "a widget", 9.99, "tools", "acme", 3, " WID-1 ")
	require.NoError(t, err)

	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "WID-1", p.SKU)
	assert.True(t, p.IsActive)
	assert.True(t, p.InStock())
}

func TestNewProduct_Validation(t *testing.T) {
	_, err := NewProduct("", "", 1, "", "", 0, "")
	assert.Error(t, err)

	_, err = NewProduct("x", "", -1, "", "", 0, "")
	assert.Error(t, err)

	_, err = NewProduct("x", "", 1, "", "", -1, "")
	assert.Error(t, err)
}

func TestProduct_AdjustStock(t *testing.T) {
	p, err := NewProduct("x", "", 1, "", "", 5, "")
	require.NoError(t, err)

	require.NoError(t, p.AdjustStock(-3))
	assert.Equal(t, 2, p.Stock)

	err = p.AdjustStock(-3)
	assert.Error(t, err)
	assert.Equal(t, 2, p.Stock)

	require.NoError(t, p.AdjustStock(10))
	assert.Equal(t, 12, p.Stock)
	assert.True(t, p.InStock())
}
