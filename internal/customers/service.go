package customers

import (
	"context"
	"fmt"
)

// Service coordinates customer operations.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Customer, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	c, err := s.repo.Create(ctx, Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
	})
	if err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

// Update replaces a customer's record after confirming it exists.
func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (Customer, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Customer{}, err
	}
	err := s.repo.Update(ctx, id, Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
	})
	if err != nil {
		return Customer{}, fmt.Errorf("update customer: %w", err)
	}
	return s.repo.Get(ctx, id)
}
