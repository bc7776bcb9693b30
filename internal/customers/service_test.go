package customers

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farmstore/farmstore/internal/platform/httpx"
)

type memoryRepo struct {
	customers map[int64]Customer
	nextID    int64
}

func newMemoryRepo(customers ...Customer) *memoryRepo {
	r := &memoryRepo{customers: make(map[int64]Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *memoryRepo) List(ctx context.Context) ([]Customer, error) {
	out := make([]Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return Customer{}, fmt.Errorf("%w: customer %d", httpx.ErrNotFound, id)
	}
	return c, nil
}

func (r *memoryRepo) Create(ctx context.Context, c Customer) (Customer, error) {
	r.nextID++
	c.ID = r.nextID
	r.customers[c.ID] = c
	return c, nil
}

func (r *memoryRepo) Update(ctx context.Context, id int64, c Customer) error {
	existing, ok := r.customers[id]
	if !ok {
		return fmt.Errorf("%w: customer %d", httpx.ErrNotFound, id)
	}
	existing.FirstName = c.FirstName
	existing.LastName = c.LastName
	existing.Gender = c.Gender
	r.customers[id] = existing
	return nil
}

func TestCreateAndListCustomers(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), CreateCustomerRequest{FirstName: "Marie", LastName: "Dupont", Gender: "F"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = svc.Create(context.Background(), CreateCustomerRequest{FirstName: "Jean", LastName: "Aubert", Gender: "M"})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Aubert", list[0].LastName)
	require.Equal(t, "Dupont", list[1].LastName)
}

func TestUpdateReplacesFullRecord(t *testing.T) {
	repo := newMemoryRepo(Customer{ID: 1, FirstName: "Marie", LastName: "Dupont", Gender: "F"})
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), 1, UpdateCustomerRequest{
		FirstName: "Marie",
		LastName:  "Martin",
		Gender:    "F",
	})
	require.NoError(t, err)
	require.Equal(t, "Martin", updated.LastName)
	require.Equal(t, "Martin", repo.customers[1].LastName)
}

func TestUpdateUnknownCustomer(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Update(context.Background(), 99, UpdateCustomerRequest{
		FirstName: "Marie",
		LastName:  "Dupont",
		Gender:    "F",
	})
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestGetUnknownCustomer(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Get(context.Background(), 1)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
