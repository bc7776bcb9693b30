package reports

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

type stubRepo struct {
	lines []ReportLine
	calls int
}

func (r *stubRepo) SalesBetween(ctx context.Context, from, toExclusive time.Time) ([]ReportLine, error) {
	r.calls++
	return r.lines, nil
}

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, ttl)
}

func TestQueryValidatesDates(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)

	cases := []struct{ start, end string }{
		{"", "2026-08-31"},
		{"2026-08-01", ""},
		{"08/01/2026", "2026-08-31"},
		{"2026-08-01", "not-a-date"},
		{"2026-08-31", "2026-08-01"}, // end before start
	}
	for _, tc := range cases {
		_, err := svc.Query(context.Background(), tc.start, tc.end)
		require.ErrorIs(t, err, httpx.ErrValidation, "start=%q end=%q", tc.start, tc.end)
	}
}

func TestQueryReturnsLinesAndTotal(t *testing.T) {
	name := "Marie Dupont"
	repo := &stubRepo{
		lines: []ReportLine{
			{SaleCode: "a", ProductName: "Eggs", CustomerName: &name, Quantity: 4, PriceHTAtSale: 3.50, VATRateAtSale: 0.055, LineTotalTTC: 3.50 * 1.055 * 4},
			{SaleCode: "a", ProductName: "Milk", Quantity: 2, PriceHTAtSale: 1.20, VATRateAtSale: 0.055, LineTotalTTC: 1.20 * 1.055 * 2},
		},
	}
	svc := NewService(repo, nil)

	report, err := svc.Query(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, "2026-08-01", report.Start)
	require.Equal(t, "2026-08-31", report.End)
	require.Len(t, report.Lines, 2)
	require.InDelta(t, 3.50*1.055*4+1.20*1.055*2, report.TotalTTC, 1e-9)
}

func TestQueryTotalAgreesWithLineDetail(t *testing.T) {
	repo := &stubRepo{
		lines: []ReportLine{
			{SaleCode: "a", LineTotalTTC: 10.55},
			{SaleCode: "b", LineTotalTTC: 2.11},
			{SaleCode: "b", LineTotalTTC: 7.34},
		},
	}
	svc := NewService(repo, nil)

	report, err := svc.Query(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls, "total must come from the same read as the lines")

	var sum float64
	for _, l := range report.Lines {
		sum += l.LineTotalTTC
	}
	require.InDelta(t, sum, report.TotalTTC, 1e-9)
}

func TestQueryEmptyRangeReturnsEmptyLines(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)

	report, err := svc.Query(context.Background(), "2026-01-01", "2026-01-01")
	require.NoError(t, err)
	require.NotNil(t, report.Lines)
	require.Empty(t, report.Lines)
	require.Zero(t, report.TotalTTC)
}

func TestQueryServesSecondReadFromCache(t *testing.T) {
	repo := &stubRepo{lines: []ReportLine{{SaleCode: "a", LineTotalTTC: 42}}}
	svc := NewService(repo, newTestCache(t, time.Minute))

	_, err := svc.Query(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	report, err := svc.Query(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls, "second read must hit the cache")
	require.InDelta(t, 42.0, report.TotalTTC, 1e-9)
}

func TestBumpInvalidatesCachedReports(t *testing.T) {
	repo := &stubRepo{lines: []ReportLine{{SaleCode: "a", LineTotalTTC: 10}}}
	cache := newTestCache(t, time.Minute)
	svc := NewService(repo, cache)

	_, err := svc.Query(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	// A committed sale bumps the version; the next read must reload.
	repo.lines = []ReportLine{{SaleCode: "a", LineTotalTTC: 20}}
	require.NoError(t, cache.Bump(context.Background()))

	report, err := svc.Query(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
	require.InDelta(t, 20.0, report.TotalTTC, 1e-9)
}

func TestNilCacheIsPassThrough(t *testing.T) {
	var cache *Cache
	require.NoError(t, cache.Bump(context.Background()))

	key, err := cache.BuildKey(context.Background(), "reports", "sales", "a", "b")
	require.NoError(t, err)
	require.Equal(t, "reports:sales:a:b", key)

	var out int
	err = cache.FetchJSON(context.Background(), key, &out, func(context.Context) (interface{}, error) {
		return 7, nil
	})
	require.NoError(t, err)
	require.Equal(t, 7, out)
}
