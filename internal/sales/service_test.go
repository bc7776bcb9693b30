package sales

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

// memoryRepo simulates the transactional repository: WithTx stages changes on
// a copy of the state and publishes it only when the callback succeeds, so
// rollback semantics hold like in the real database.
type memoryRepo struct {
	state memoryState
}

type memoryState struct {
	products map[int64]ProductSnapshot
	sales    []Sale
	items    []SaleItem
	nextID   int64
}

func (s memoryState) clone() memoryState {
	out := memoryState{
		products: make(map[int64]ProductSnapshot, len(s.products)),
		sales:    append([]Sale(nil), s.sales...),
		items:    append([]SaleItem(nil), s.items...),
		nextID:   s.nextID,
	}
	for id, p := range s.products {
		out.products[id] = p
	}
	return out
}

func newMemoryRepo(products ...ProductSnapshot) *memoryRepo {
	r := &memoryRepo{state: memoryState{products: make(map[int64]ProductSnapshot)}}
	for _, p := range products {
		r.state.products[p.ID] = p
	}
	return r
}

type memoryTx struct {
	state *memoryState
}

func (r *memoryRepo) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	staged := r.state.clone()
	if err := fn(ctx, &memoryTx{state: &staged}); err != nil {
		return err
	}
	r.state = staged
	return nil
}

func (r *memoryRepo) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	for i := len(r.state.sales) - 1; i >= 0 && len(entries) < limit; i-- {
		s := r.state.sales[i]
		e := HistoryEntry{SaleID: s.ID, Code: s.Code, CreatedAt: s.CreatedAt}
		for _, item := range r.state.items {
			if item.SaleID == s.ID {
				e.ItemCount++
				e.TotalTTC += item.PriceHTAtSale * (1 + item.VATRateAtSale) * float64(item.Quantity)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (t *memoryTx) InsertSale(ctx context.Context, code string, customerID *int64) (Sale, error) {
	t.state.nextID++
	s := Sale{ID: t.state.nextID, Code: code, CustomerID: customerID, CreatedAt: time.Now()}
	t.state.sales = append(t.state.sales, s)
	return s, nil
}

func (t *memoryTx) GetProductForUpdate(ctx context.Context, productID int64) (ProductSnapshot, error) {
	p, ok := t.state.products[productID]
	if !ok {
		return ProductSnapshot{}, fmt.Errorf("%w: product %d", httpx.ErrNotFound, productID)
	}
	return p, nil
}

func (t *memoryTx) InsertSaleItem(ctx context.Context, item SaleItem) (int64, error) {
	t.state.nextID++
	item.ID = t.state.nextID
	t.state.items = append(t.state.items, item)
	return item.ID, nil
}

func (t *memoryTx) SetProductStock(ctx context.Context, productID int64, stock int) error {
	p, ok := t.state.products[productID]
	if !ok {
		return fmt.Errorf("%w: product %d", httpx.ErrNotFound, productID)
	}
	p.Stock = stock
	t.state.products[productID] = p
	return nil
}

func TestRecordSaleDecrementsStockAndSnapshotsPrices(t *testing.T) {
	repo := newMemoryRepo(
		ProductSnapshot{ID: 1, Name: "Eggs", PriceHT: 3.50, VATRate: 0.055, Stock: 12},
		ProductSnapshot{ID: 2, Name: "Milk", PriceHT: 1.20, VATRate: 0.055, Stock: 8},
	)
	svc := NewService(repo, nil, nil, nil)

	customerID := int64(7)
	resp, err := svc.Record(context.Background(), CreateSaleRequest{
		CustomerID: &customerID,
		Items: []SaleLineRequest{
			{ProductID: 1, Quantity: 4},
			{ProductID: 2, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Code)
	require.Equal(t, &customerID, resp.CustomerID)
	require.Len(t, resp.Items, 2)

	require.Equal(t, 8, repo.state.products[1].Stock)
	require.Equal(t, 6, repo.state.products[2].Stock)

	require.Len(t, repo.state.items, 2)
	require.InDelta(t, 3.50, repo.state.items[0].PriceHTAtSale, 1e-9)
	require.InDelta(t, 0.055, repo.state.items[0].VATRateAtSale, 1e-9)

	wantTotal := 3.50*1.055*4 + 1.20*1.055*2
	require.InDelta(t, wantTotal, resp.TotalTTC, 1e-9)
}

func TestRecordSaleWalkInCustomer(t *testing.T) {
	repo := newMemoryRepo(ProductSnapshot{ID: 1, Name: "Eggs", PriceHT: 3.50, VATRate: 0.055, Stock: 5})
	svc := NewService(repo, nil, nil, nil)

	resp, err := svc.Record(context.Background(), CreateSaleRequest{
		Items: []SaleLineRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Nil(t, resp.CustomerID)
}

func TestRecordSaleInsufficientStockCommitsNothing(t *testing.T) {
	repo := newMemoryRepo(
		ProductSnapshot{ID: 1, Name: "Eggs", PriceHT: 3.50, VATRate: 0.055, Stock: 10},
		ProductSnapshot{ID: 2, Name: "Milk", PriceHT: 1.20, VATRate: 0.055, Stock: 1},
	)
	svc := NewService(repo, nil, nil, nil)

	_, err := svc.Record(context.Background(), CreateSaleRequest{
		Items: []SaleLineRequest{
			{ProductID: 1, Quantity: 3}, // fine on its own
			{ProductID: 2, Quantity: 5}, // exceeds stock, sinks the whole sale
		},
	})
	require.Error(t, err)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, "Milk", insufficient.ProductName)
	require.Equal(t, 5, insufficient.Requested)
	require.Equal(t, 1, insufficient.Available)
	require.ErrorIs(t, err, httpx.ErrValidation)

	// Earlier lines rolled back with the rest.
	require.Equal(t, 10, repo.state.products[1].Stock)
	require.Equal(t, 1, repo.state.products[2].Stock)
	require.Empty(t, repo.state.sales)
	require.Empty(t, repo.state.items)
}

func TestRecordSaleUnknownProductCommitsNothing(t *testing.T) {
	repo := newMemoryRepo(ProductSnapshot{ID: 1, Name: "Eggs", PriceHT: 3.50, VATRate: 0.055, Stock: 10})
	svc := NewService(repo, nil, nil, nil)

	_, err := svc.Record(context.Background(), CreateSaleRequest{
		Items: []SaleLineRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 99, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Equal(t, 10, repo.state.products[1].Stock)
	require.Empty(t, repo.state.sales)
	require.Empty(t, repo.state.items)
}

func TestRecordSecondSaleRejectedWhenStockExhausted(t *testing.T) {
	// Two back-to-back sales of 3 against stock 5: the row lock serializes
	// them, so exactly one succeeds and stock ends at 2.
	repo := newMemoryRepo(ProductSnapshot{ID: 1, Name: "Eggs", PriceHT: 3.50, VATRate: 0.055, Stock: 5})
	svc := NewService(repo, nil, nil, nil)

	req := CreateSaleRequest{Items: []SaleLineRequest{{ProductID: 1, Quantity: 3}}}

	_, err := svc.Record(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, repo.state.products[1].Stock)

	_, err = svc.Record(context.Background(), req)
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 3, insufficient.Requested)
	require.Equal(t, 2, insufficient.Available)
	require.Equal(t, 2, repo.state.products[1].Stock)
}

func TestRecordSaleRejectsEmptyAndNonPositiveLines(t *testing.T) {
	repo := newMemoryRepo(ProductSnapshot{ID: 1, Name: "Eggs", PriceHT: 3.50, VATRate: 0.055, Stock: 5})
	svc := NewService(repo, nil, nil, nil)

	_, err := svc.Record(context.Background(), CreateSaleRequest{})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Record(context.Background(), CreateSaleRequest{
		Items: []SaleLineRequest{{ProductID: 1, Quantity: 0}},
	})
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Empty(t, repo.state.sales)
}

func TestHistoryLimitBounds(t *testing.T) {
	repo := newMemoryRepo(ProductSnapshot{ID: 1, Name: "Eggs", PriceHT: 3.50, VATRate: 0.055, Stock: 100})
	svc := NewService(repo, nil, nil, nil)

	for i := 0; i < 3; i++ {
		_, err := svc.Record(context.Background(), CreateSaleRequest{
			Items: []SaleLineRequest{{ProductID: 1, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	entries, err := svc.History(context.Background(), 0) // default limit
	require.NoError(t, err)
	require.Len(t, entries, 3)

	entries, err = svc.History(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
