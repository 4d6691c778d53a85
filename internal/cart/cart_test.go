package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batteryItem() Item {
	return Item{
		ProductID: 1,
		Title:     "Exide Inva Master 150Ah",
		Price:     Price{DP: 100, MRP: 150},
	}
}

func TestAddItemMergesQuantity(t *testing.T) {
	c := Empty().AddItem(batteryItem(), 2).AddItem(batteryItem(), 1)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 3, c.TotalItems)
	assert.Equal(t, 300.0, c.Subtotal)
	assert.Equal(t, 150.0, c.Savings)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	c := Empty().AddItem(batteryItem(), 0)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestAddDistinctProducts(t *testing.T) {
	second := Item{ProductID: 2, Title: "Luminous Zelio 1100", Price: Price{DP: 50, MRP: 60}}
	c := Empty().AddItem(batteryItem(), 1).AddItem(second, 2)

	require.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.TotalItems)
	assert.Equal(t, 200.0, c.Subtotal)
	assert.Equal(t, 70.0, c.Savings)
}

func TestRemoveItem(t *testing.T) {
	c := Empty().AddItem(batteryItem(), 2).RemoveItem(1)

	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.TotalItems)
	assert.Equal(t, 0.0, c.Subtotal)
	assert.Equal(t, 0.0, c.Savings)

	// Removing an absent product changes nothing.
	c = c.RemoveItem(42)
	assert.Empty(t, c.Items)
}

func TestUpdateQuantity(t *testing.T) {
	c := Empty().AddItem(batteryItem(), 2).UpdateQuantity(1, 5)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.TotalItems)
	assert.Equal(t, 500.0, c.Subtotal)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	c := Empty().AddItem(batteryItem(), 2)

	assert.Empty(t, c.UpdateQuantity(1, 0).Items)
	assert.Empty(t, c.UpdateQuantity(1, -3).Items)
}

func TestClear(t *testing.T) {
	c := Empty().AddItem(batteryItem(), 2).Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.TotalItems)
}

func TestMutationsDoNotAliasOriginal(t *testing.T) {
	base := Empty().AddItem(batteryItem(), 1)
	_ = base.UpdateQuantity(1, 10)

	assert.Equal(t, 1, base.Items[0].Quantity)
}

func TestInCartAndItemQuantity(t *testing.T) {
	c := Empty().AddItem(batteryItem(), 4)

	assert.True(t, c.InCart(1))
	assert.False(t, c.InCart(2))
	assert.Equal(t, 4, c.ItemQuantity(1))
	assert.Equal(t, 0, c.ItemQuantity(2))
}
