package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNotifier captures notifications for assertion.
type stubNotifier struct {
	successes []string
	infos     []string
	errs      []string
}

func (n *stubNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *stubNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }
func (n *stubNotifier) Error(msg string)   { n.errs = append(n.errs, msg) }

var _ Notifier = (*stubNotifier)(nil)

func product(id, name string, price int64, stock int) Product {
	return Product{ID: id, Name: name, Price: decimal.NewFromInt(price), Stock: stock}
}

func TestAddOutOfStockProductLeavesCartUnchanged(t *testing.T) {
	notifier := &stubNotifier{}
	cart := NewCart(notifier)

	cart.Add(product("p1", "Soda", 1000, 0))

	assert.Equal(t, 0, cart.Len())
	assert.Len(t, notifier.infos, 1, "the operator should see a warning")
}

func TestAddIncrementsExistingLine(t *testing.T) {
	cart := NewCart(&stubNotifier{})
	p := product("p1", "Soda", 1000, 3)

	cart.Add(p)
	cart.Add(p)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestQuantityNeverExceedsStock(t *testing.T) {
	notifier := &stubNotifier{}
	cart := NewCart(notifier)
	p := product("p1", "Soda", 1000, 2)

	cart.Add(p)
	cart.Add(p)
	cart.Add(p) // rejected, stock is 2
	cart.Increment("p1")

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Items()[0].Quantity)
	assert.Len(t, notifier.infos, 2)
}

func TestQuantityBoundsHoldAcrossOperations(t *testing.T) {
	cart := NewCart(&stubNotifier{})
	p := product("p1", "Soda", 1000, 5)

	cart.Add(p)
	cart.Increment("p1")
	cart.Increment("p1")
	cart.Decrement("p1")
	cart.Increment("p1")
	cart.Increment("p1")
	cart.Increment("p1")
	cart.Increment("p1") // exceeds stock, rejected

	for _, item := range cart.Items() {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.LessOrEqual(t, item.Quantity, item.Product.Stock)
	}
}

func TestDecrementAtOneIsNoOp(t *testing.T) {
	cart := NewCart(&stubNotifier{})
	cart.Add(product("p1", "Soda", 1000, 5))

	cart.Decrement("p1")

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Items()[0].Quantity, "removal must be explicit")
}

func TestRemoveDeletesLineUnconditionally(t *testing.T) {
	cart := NewCart(&stubNotifier{})
	cart.Add(product("p1", "Soda", 1000, 5))
	cart.Add(product("p2", "Chips", 500, 5))

	cart.Remove("p1")

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, "p2", cart.Items()[0].Product.ID)
}

func TestTotalIsSumOfPriceTimesQuantity(t *testing.T) {
	cart := NewCart(&stubNotifier{})
	soda := product("p1", "Soda", 1000, 10)
	chips := product("p2", "Chips", 500, 10)

	cart.Add(soda)
	cart.Add(soda)
	cart.Add(chips)

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(2500)),
		"expected 2500, got %s", cart.Total())
}

func TestClearEmptiesCart(t *testing.T) {
	cart := NewCart(&stubNotifier{})
	cart.Add(product("p1", "Soda", 1000, 5))
	cart.Add(product("p2", "Chips", 500, 5))

	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.True(t, cart.Total().IsZero())
}
