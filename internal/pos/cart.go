package pos

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartItem is a catalog product plus a cart-local quantity.
// Invariant: 1 <= Quantity <= Product.Stock while the item is in the cart.
type CartItem struct {
	Product  Product
	Quantity int
}

// Cart holds the lines the operator intends to purchase. It is owned by a
// single terminal session; no locking because there is exactly one writer.
type Cart struct {
	items    []CartItem
	notifier Notifier
}

func NewCart(notifier Notifier) *Cart {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Cart{notifier: notifier}
}

// Add inserts p with quantity 1, or bumps an existing line by 1. Out-of-stock
// products and increments past stock are rejected with a warning.
func (c *Cart) Add(p Product) {
	if p.Stock == 0 {
		c.notifier.Info(fmt.Sprintf("%s is out of stock", p.Name))
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			if c.items[i].Quantity+1 > c.items[i].Product.Stock {
				c.notifier.Info(fmt.Sprintf("only %d units of %s available", c.items[i].Product.Stock, p.Name))
				return
			}
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// Increment bumps a line's quantity by 1, bounded by stock.
func (c *Cart) Increment(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if c.items[i].Quantity+1 > c.items[i].Product.Stock {
				c.notifier.Info(fmt.Sprintf("only %d units of %s available", c.items[i].Product.Stock, c.items[i].Product.Name))
				return
			}
			c.items[i].Quantity++
			return
		}
	}
}

// Decrement lowers a line's quantity by 1. At quantity 1 it is a no-op;
// removal is always explicit.
func (c *Cart) Decrement(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
			}
			return
		}
	}
}

// Remove deletes a line unconditionally.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() { c.items = nil }

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Total recomputes the cart total on every call. Cart size is operator
// bounded, so there is nothing to cache.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Payload builds the checkout request body for the current lines.
func (c *Cart) Payload(paymentMethod string) CheckoutPayload {
	items := make([]CheckoutItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, CheckoutItem{ProductID: item.Product.ID, Quantity: item.Quantity})
	}
	return CheckoutPayload{Items: items, PaymentMethod: paymentMethod}
}
