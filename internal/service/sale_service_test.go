package service

import (
	"context"
	"testing"

	"github.com/criissj/gestion-de-inventario/internal/dto"
	"github.com/criissj/gestion-de-inventario/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, repo *stubProductRepo, name string, price, cost int64, stock int) uuid.UUID {
	t.Helper()
	p := &model.Product{
		Name:     name,
		Category: "Test",
		Price:    decimal.NewFromInt(price),
		Cost:     decimal.NewFromInt(cost),
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p.ID
}

func newSaleServiceForTest(productRepo *stubProductRepo, saleRepo *stubSaleRepo, logRepo *stubLogRepo) SaleService {
	return NewSaleService(saleRepo, productRepo, logRepo, NewCatalogCache(nil), nil, 10)
}

func TestCheckoutComputesTotalsAndDecrementsStock(t *testing.T) {
	productRepo := newStubProductRepo()
	saleRepo := &stubSaleRepo{}
	logRepo := &stubLogRepo{}
	svc := newSaleServiceForTest(productRepo, saleRepo, logRepo)

	sodaID := seedProduct(t, productRepo, "Soda", 1000, 600, 10)
	chipsID := seedProduct(t, productRepo, "Chips", 500, 200, 5)

	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ProductID: sodaID.String(), Quantity: 2},
			{ProductID: chipsID.String(), Quantity: 1},
		},
		PaymentMethod: model.PaymentCard,
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(2500)), "got %s", resp.TotalAmount)
	assert.True(t, resp.TotalProfit.Equal(decimal.NewFromInt(1100)), "got %s", resp.TotalProfit)
	assert.Equal(t, model.PaymentCard, resp.PaymentMethod)
	require.Len(t, resp.Items, 2)

	soda, _ := productRepo.FindByID(context.Background(), sodaID)
	chips, _ := productRepo.FindByID(context.Background(), chipsID)
	assert.Equal(t, 8, soda.Stock)
	assert.Equal(t, 4, chips.Stock)

	// One SALE audit row per line, with the snapshot details
	saleLogs := logRepo.byAction(model.LogActionSale)
	require.Len(t, saleLogs, 2)
	assert.Equal(t, "Sold 2 units via Card", saleLogs[0].Details)
}

func TestCheckoutSnapshotsPriceAndCost(t *testing.T) {
	productRepo := newStubProductRepo()
	saleRepo := &stubSaleRepo{}
	svc := newSaleServiceForTest(productRepo, saleRepo, &stubLogRepo{})

	id := seedProduct(t, productRepo, "Soda", 1200, 600, 10)
	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductID: id.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	require.Len(t, saleRepo.sales, 1)
	item := saleRepo.sales[0].Items[0]
	assert.True(t, item.PriceAtSale.Equal(decimal.NewFromInt(1200)))
	assert.True(t, item.CostAtSale.Equal(decimal.NewFromInt(600)))
}

func TestCheckoutDefaultsPaymentMethodToCash(t *testing.T) {
	productRepo := newStubProductRepo()
	svc := newSaleServiceForTest(productRepo, &stubSaleRepo{}, &stubLogRepo{})
	id := seedProduct(t, productRepo, "Soda", 1000, 600, 10)

	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductID: id.String(), Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCash, resp.PaymentMethod)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	productRepo := newStubProductRepo()
	svc := newSaleServiceForTest(productRepo, &stubSaleRepo{}, &stubLogRepo{})
	id := seedProduct(t, productRepo, "Soda", 1000, 600, 10)

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: id.String(), Quantity: 1}},
		PaymentMethod: "Crypto",
	})
	assert.Error(t, err)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc := newSaleServiceForTest(newStubProductRepo(), &stubSaleRepo{}, &stubLogRepo{})

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{})
	assert.EqualError(t, err, "cart is empty")
}

func TestCheckoutRejectsInsufficientStock(t *testing.T) {
	productRepo := newStubProductRepo()
	saleRepo := &stubSaleRepo{}
	svc := newSaleServiceForTest(productRepo, saleRepo, &stubLogRepo{})
	id := seedProduct(t, productRepo, "Soda", 1000, 600, 1)

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductID: id.String(), Quantity: 3}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock for Soda")
	assert.Empty(t, saleRepo.sales, "no partial sale may be recorded")

	p, _ := productRepo.FindByID(context.Background(), id)
	assert.Equal(t, 1, p.Stock, "stock must be untouched on rejection")
}

func TestCheckoutRejectsInactiveProduct(t *testing.T) {
	productRepo := newStubProductRepo()
	svc := newSaleServiceForTest(productRepo, &stubSaleRepo{}, &stubLogRepo{})
	id := seedProduct(t, productRepo, "Soda", 1000, 600, 10)
	require.NoError(t, productRepo.SoftDelete(context.Background(), id))

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductID: id.String(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestCheckoutRejectsUnknownProduct(t *testing.T) {
	svc := newSaleServiceForTest(newStubProductRepo(), &stubSaleRepo{}, &stubLogRepo{})

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListReturnsSalesNewestFirst(t *testing.T) {
	productRepo := newStubProductRepo()
	saleRepo := &stubSaleRepo{}
	svc := newSaleServiceForTest(productRepo, saleRepo, &stubLogRepo{})

	first := seedProduct(t, productRepo, "Soda", 1000, 600, 10)
	second := seedProduct(t, productRepo, "Chips", 500, 200, 10)
	for _, id := range []uuid.UUID{first, second} {
		_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
			Items: []dto.CheckoutItemRequest{{ProductID: id.String(), Quantity: 1}},
		})
		require.NoError(t, err)
	}

	sales, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, second.String(), sales[0].Items[0].ProductID)
}
