package pos

import "github.com/shopspring/decimal"

var two = decimal.NewFromInt(2)

// ProductForm is the unsaved state of the product editor. While the
// auto-price toggle is on, editing cost keeps price at 2x cost as a
// convenience default. The toggle is an explicit flag rather than an
// inference on every edit, so an operator who happens to set price to
// exactly double the cost does not get surprised by later cost edits.
type ProductForm struct {
	Name     string
	Category string
	SKU      string
	Cost     decimal.Decimal
	Price    decimal.Decimal
	Stock    int

	autoPrice bool
}

// NewProductForm returns an empty form with auto-price on.
func NewProductForm() *ProductForm {
	return &ProductForm{autoPrice: true}
}

// FormFromProduct loads an existing product for editing. The auto-price flag
// is seeded once, here: a zero price or a price exactly double the cost means
// the operator never priced it by hand.
func FormFromProduct(p Product) *ProductForm {
	sku := ""
	if p.SKU != nil {
		sku = *p.SKU
	}
	return &ProductForm{
		Name:      p.Name,
		Category:  p.Category,
		SKU:       sku,
		Cost:      p.Cost,
		Price:     p.Price,
		Stock:     p.Stock,
		autoPrice: p.Price.IsZero() || p.Price.Equal(p.Cost.Mul(two)),
	}
}

// SetCost updates the cost and, while auto-price is on, keeps price at 2x.
func (f *ProductForm) SetCost(cost decimal.Decimal) {
	f.Cost = cost
	if f.autoPrice {
		f.Price = cost.Mul(two)
	}
}

// SetPrice records a manual price and turns auto-price off.
func (f *ProductForm) SetPrice(price decimal.Decimal) {
	f.Price = price
	f.autoPrice = false
}

// SetAutoPrice toggles the convenience default explicitly. Turning it on
// immediately re-derives price from the current cost.
func (f *ProductForm) SetAutoPrice(on bool) {
	f.autoPrice = on
	if on {
		f.Price = f.Cost.Mul(two)
	}
}

func (f *ProductForm) AutoPrice() bool { return f.autoPrice }
