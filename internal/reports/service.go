package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

const dateLayout = "2006-01-02"

// Service builds date-range sales reports with cache-aside reads.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService builds Service. cache may be nil.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Query aggregates sales between start and end (both YYYY-MM-DD, end
// inclusive). Missing or malformed dates are validation errors.
func (s *Service) Query(ctx context.Context, start, end string) (SalesReport, error) {
	if start == "" || end == "" {
		return SalesReport{}, fmt.Errorf("%w: start and end dates are required", httpx.ErrValidation)
	}
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return SalesReport{}, fmt.Errorf("%w: start must be YYYY-MM-DD", httpx.ErrValidation)
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return SalesReport{}, fmt.Errorf("%w: end must be YYYY-MM-DD", httpx.ErrValidation)
	}
	if to.Before(from) {
		return SalesReport{}, fmt.Errorf("%w: end must not precede start", httpx.ErrValidation)
	}
	toExclusive := to.AddDate(0, 0, 1)

	key, err := s.cache.BuildKey(ctx, "reports", "sales", start, end)
	if err != nil {
		return SalesReport{}, err
	}

	var report SalesReport
	err = s.cache.FetchJSON(ctx, key, &report, func(ctx context.Context) (interface{}, error) {
		lines, err := s.repo.SalesBetween(ctx, from, toExclusive)
		if err != nil {
			return nil, err
		}
		if lines == nil {
			lines = []ReportLine{}
		}
		// Total is derived from the fetched lines, never from a second read,
		// so the report always agrees with its own detail.
		var total float64
		for _, l := range lines {
			total += l.LineTotalTTC
		}
		return SalesReport{Start: start, End: end, Lines: lines, TotalTTC: total}, nil
	})
	if err != nil {
		return SalesReport{}, err
	}
	return report, nil
}
