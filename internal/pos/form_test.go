package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestZeroPriceSeedsAutoPrice(t *testing.T) {
	form := FormFromProduct(Product{Cost: d(100), Price: d(0)})

	form.SetCost(d(200))

	assert.True(t, form.AutoPrice())
	assert.True(t, form.Price.Equal(d(400)), "got %s", form.Price)
}

func TestDoubledPriceSeedsAutoPrice(t *testing.T) {
	form := FormFromProduct(Product{Cost: d(100), Price: d(200)})

	form.SetCost(d(150))

	assert.True(t, form.AutoPrice())
	assert.True(t, form.Price.Equal(d(300)), "got %s", form.Price)
}

func TestManuallyPricedProductIgnoresCostEdits(t *testing.T) {
	form := FormFromProduct(Product{Cost: d(100), Price: d(999)})

	form.SetCost(d(150))

	assert.False(t, form.AutoPrice())
	assert.True(t, form.Price.Equal(d(999)), "got %s", form.Price)
}

func TestSetPriceTurnsAutoOff(t *testing.T) {
	form := NewProductForm()
	form.SetCost(d(100))
	assert.True(t, form.Price.Equal(d(200)))

	form.SetPrice(d(250))
	form.SetCost(d(500))

	assert.False(t, form.AutoPrice())
	assert.True(t, form.Price.Equal(d(250)), "got %s", form.Price)
}

func TestExplicitToggleRederivesPrice(t *testing.T) {
	form := NewProductForm()
	form.SetCost(d(100))
	form.SetPrice(d(250))

	form.SetAutoPrice(true)

	assert.True(t, form.Price.Equal(d(200)), "got %s", form.Price)
}
