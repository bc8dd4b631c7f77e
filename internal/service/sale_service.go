package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/criissj/gestion-de-inventario/internal/dto"
	"github.com/criissj/gestion-de-inventario/internal/model"
	"github.com/criissj/gestion-de-inventario/internal/repository"
	"github.com/criissj/gestion-de-inventario/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService registers checkouts and serves the sales history.
type SaleService interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.SaleResponse, error)
	List(ctx context.Context) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo              repository.SaleRepository
	productRepo       repository.ProductRepository
	logRepo           repository.ProductLogRepository
	cache             *CatalogCache
	dispatcher        *worker.Dispatcher
	lowStockThreshold int
}

func NewSaleService(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	logRepo repository.ProductLogRepository,
	cache *CatalogCache,
	dispatcher *worker.Dispatcher,
	lowStockThreshold int,
) SaleService {
	return &saleService{
		repo:              repo,
		productRepo:       productRepo,
		logRepo:           logRepo,
		cache:             cache,
		dispatcher:        dispatcher,
		lowStockThreshold: lowStockThreshold,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Checkout ─────────────────────────────────────────────────────────────────
// The backend is the stock authority: the terminal's clamping is best-effort,
// so every line is re-validated here and the whole sale is rejected — with no
// partial effects — when any line cannot be satisfied.
//   1. Resolve each product, snapshot price/cost, verify active + stock
//   2. Compute total_amount and total_profit
//   3. BEGIN TX: create sale + items, decrement stock, write SALE logs
//   4. COMMIT, invalidate catalog cache
//   5. (async) enqueue low-stock alerts for lines that fell below threshold

func (s *saleService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.PaymentCash
	}
	switch paymentMethod {
	case model.PaymentCash, model.PaymentCard, model.PaymentTransfer:
	default:
		return nil, fmt.Errorf("unknown payment method %q", paymentMethod)
	}

	type resolvedItem struct {
		productID  uuid.UUID
		name       string
		price      decimal.Decimal
		cost       decimal.Decimal
		quantity   int
		stockAfter int
	}

	// Pre-flight resolution outside the TX; the decrement guard inside the TX
	// re-checks stock against concurrent sales.
	var resolved []resolvedItem
	totalAmount := decimal.Zero
	totalProfit := decimal.Zero

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product_id %q", item.ProductID)
		}
		p, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("product %s not found", item.ProductID)
		}
		if !p.IsActive {
			return nil, fmt.Errorf("product %s is inactive and cannot be sold", p.Name)
		}
		if p.Stock < item.Quantity {
			return nil, fmt.Errorf("insufficient stock for %s: %d available", p.Name, p.Stock)
		}

		qty := decimal.NewFromInt(int64(item.Quantity))
		totalAmount = totalAmount.Add(p.Price.Mul(qty))
		totalProfit = totalProfit.Add(p.Price.Sub(p.Cost).Mul(qty))

		resolved = append(resolved, resolvedItem{
			productID:  pid,
			name:       p.Name,
			price:      p.Price,
			cost:       p.Cost,
			quantity:   item.Quantity,
			stockAfter: p.Stock - item.Quantity,
		})
	}

	sale := model.Sale{
		TotalAmount:   totalAmount,
		TotalProfit:   totalProfit,
		PaymentMethod: paymentMethod,
	}
	for _, r := range resolved {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID:   r.productID,
			Quantity:    r.quantity,
			PriceAtSale: r.price,
			CostAtSale:  r.cost,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &sale); err != nil {
			return err
		}
		for _, r := range resolved {
			if err := s.productRepo.DecrementStockTx(tx, r.productID, r.quantity); err != nil {
				return fmt.Errorf("insufficient stock for %s", r.name)
			}
			entry := &model.ProductLog{
				ProductID: r.productID,
				Action:    model.LogActionSale,
				Details:   fmt.Sprintf("Sold %d units via %s", r.quantity, paymentMethod),
			}
			if err := s.logRepo.CreateTx(tx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.cache.Invalidate(ctx)

	// Low-stock alerts — best effort, fire & forget.
	if s.dispatcher != nil {
		for _, r := range resolved {
			if r.stockAfter < s.lowStockThreshold {
				_ = s.dispatcher.EnqueueStockAlert(ctx, worker.StockAlertPayload{
					ProductID: r.productID.String(),
					Name:      r.name,
					Stock:     r.stockAfter,
				})
			}
		}
	}

	return saleToResponse(&sale), nil
}

func (s *saleService) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, *saleToResponse(&sales[i]))
	}
	return resp, nil
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.PriceAtSale,
			Cost:      item.CostAtSale,
		})
	}
	return &dto.SaleResponse{
		ID:            sale.ID.String(),
		DateTime:      sale.CreatedAt.UTC().Format(time.RFC3339),
		TotalAmount:   sale.TotalAmount,
		TotalProfit:   sale.TotalProfit,
		PaymentMethod: sale.PaymentMethod,
		Items:         items,
	}
}
