package products

import (
	"context"
	"fmt"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

// NegativeStockError reports a rejected adjustment that would take stock
// below zero. It unwraps to httpx.ErrValidation so handlers answer 400.
type NegativeStockError struct {
	ProductName string
	Current     int
	Change      int
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("stock for %q cannot go negative: current %d, change %d", e.ProductName, e.Current, e.Change)
}

func (e *NegativeStockError) Unwrap() error { return httpx.ErrValidation }

// Service coordinates product operations.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all products ordered by name.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Get returns a single product.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a new product. Duplicate names surface as httpx.ErrDuplicate
// from the repository.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	return s.repo.Create(ctx, Product{
		Name:    req.Name,
		PriceHT: req.PriceHT,
		VATRate: req.VATRate,
		Stock:   req.Stock,
	})
}

// AdjustStock applies a signed delta to a product's stock inside its own
// transaction. The product row is locked for the read-check-write sequence so
// concurrent adjustments and sales serialize on it.
func (s *Service) AdjustStock(ctx context.Context, id int64, change int) (StockResponse, error) {
	var out StockResponse
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		p, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		next := p.Stock + change
		if next < 0 {
			return &NegativeStockError{ProductName: p.Name, Current: p.Stock, Change: change}
		}
		if err := tx.SetStock(ctx, id, next); err != nil {
			return err
		}
		out = StockResponse{ProductID: id, Stock: next}
		return nil
	})
	if err != nil {
		return StockResponse{}, err
	}
	return out, nil
}

// ListBelowThreshold reports products whose stock is at or under the given
// threshold, used by the low-stock scan job.
func (s *Service) ListBelowThreshold(ctx context.Context, threshold int) ([]Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var low []Product
	for _, p := range all {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low, nil
}
