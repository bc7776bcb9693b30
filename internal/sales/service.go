package sales

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

// CacheInvalidator is notified after a sale commits so cached report data is
// rebuilt on next read.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

// SaleCounter observes successfully committed sales.
type SaleCounter interface {
	SaleRecorded()
}

// Service coordinates sale recording and history.
type Service struct {
	repo        Repository
	logger      *slog.Logger
	invalidator CacheInvalidator
	counter     SaleCounter
}

// NewService builds Service. invalidator and counter may be nil.
func NewService(repo Repository, logger *slog.Logger, invalidator CacheInvalidator, counter SaleCounter) *Service {
	return &Service{repo: repo, logger: logger, invalidator: invalidator, counter: counter}
}

// Record commits a multi-line sale atomically: either every line is inserted,
// priced at current values, and every product's stock decremented, or nothing
// is. Each product row is locked for the read-check-write sequence so two
// concurrent checkouts cannot both observe sufficient stock.
func (s *Service) Record(ctx context.Context, req CreateSaleRequest) (SaleResponse, error) {
	if len(req.Items) == 0 {
		return SaleResponse{}, fmt.Errorf("%w: sale must contain at least one item", httpx.ErrValidation)
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return SaleResponse{}, fmt.Errorf("%w: quantity must be positive for product %d", httpx.ErrValidation, line.ProductID)
		}
	}

	code := uuid.NewString()
	var resp SaleResponse

	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		sale, err := tx.InsertSale(ctx, code, req.CustomerID)
		if err != nil {
			return err
		}
		resp = SaleResponse{
			ID:         sale.ID,
			Code:       sale.Code,
			CustomerID: sale.CustomerID,
			CreatedAt:  sale.CreatedAt,
		}

		for _, line := range req.Items {
			p, err := tx.GetProductForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if line.Quantity > p.Stock {
				return &InsufficientStockError{ProductName: p.Name, Requested: line.Quantity, Available: p.Stock}
			}
			if _, err := tx.InsertSaleItem(ctx, SaleItem{
				SaleID:        sale.ID,
				ProductID:     p.ID,
				Quantity:      line.Quantity,
				PriceHTAtSale: p.PriceHT,
				VATRateAtSale: p.VATRate,
			}); err != nil {
				return err
			}
			if err := tx.SetProductStock(ctx, p.ID, p.Stock-line.Quantity); err != nil {
				return err
			}

			lineTotal := p.PriceHT * (1 + p.VATRate) * float64(line.Quantity)
			resp.Items = append(resp.Items, SaleLineResponse{
				ProductID:     p.ID,
				ProductName:   p.Name,
				Quantity:      line.Quantity,
				PriceHTAtSale: p.PriceHT,
				VATRateAtSale: p.VATRate,
				LineTotalTTC:  lineTotal,
			})
			resp.TotalTTC += lineTotal
		}
		return nil
	})
	if err != nil {
		return SaleResponse{}, err
	}

	if s.counter != nil {
		s.counter.SaleRecorded()
	}
	if s.invalidator != nil {
		if err := s.invalidator.Bump(ctx); err != nil && s.logger != nil {
			s.logger.Warn("report cache bump", slog.Any("error", err))
		}
	}
	return resp, nil
}

// History lists recent sales, newest first. limit defaults to 20, capped at 100.
func (s *Service) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.History(ctx, limit)
}
