package pos

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Terminal drives one operator session: a catalog snapshot, a cart, and the
// checkout flow against the backend.
type Terminal struct {
	api           API
	cart          *Cart
	notifier      Notifier
	paymentMethod string
	catalog       []Product

	// Guards against double-click double submission. Best-effort only; the
	// backend independently enforces stock correctness.
	submitting atomic.Bool
}

func NewTerminal(api API, notifier Notifier) *Terminal {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Terminal{
		api:           api,
		cart:          NewCart(notifier),
		notifier:      notifier,
		paymentMethod: "Cash",
	}
}

func (t *Terminal) Cart() *Cart { return t.cart }

// SetPaymentMethod selects the method sent with the next checkout.
func (t *Terminal) SetPaymentMethod(method string) { t.paymentMethod = method }

func (t *Terminal) PaymentMethod() string { return t.paymentMethod }

// Catalog returns the last fetched catalog snapshot.
func (t *Terminal) Catalog() []Product { return t.catalog }

// RefreshCatalog re-fetches the active product list from the backend.
func (t *Terminal) RefreshCatalog(ctx context.Context) error {
	products, err := t.api.FetchCatalog(ctx)
	if err != nil {
		t.notifier.Error("failed to load catalog: " + err.Error())
		return err
	}
	t.catalog = products
	return nil
}

// Checkout submits the cart as a sale. An empty cart or an in-flight
// submission is a no-op with no network request. On success the cart is
// cleared and the catalog refreshed exactly once so the terminal reflects the
// server-side stock decrement. On failure the cart is left untouched so the
// operator can retry.
func (t *Terminal) Checkout(ctx context.Context) error {
	if t.cart.Len() == 0 {
		t.notifier.Info("cart is empty")
		return nil
	}
	if !t.submitting.CompareAndSwap(false, true) {
		return nil
	}
	defer t.submitting.Store(false)

	receipt, err := t.api.SubmitSale(ctx, t.cart.Payload(t.paymentMethod))
	if err != nil {
		if apiErr, ok := err.(*APIError); ok {
			t.notifier.Error(apiErr.Message)
		} else {
			t.notifier.Error("checkout failed, please try again")
		}
		return err
	}

	t.notifier.Success(fmt.Sprintf("sale registered: $%s via %s", receipt.TotalAmount.StringFixed(2), receipt.PaymentMethod))
	t.cart.Clear()
	return t.RefreshCatalog(ctx)
}
