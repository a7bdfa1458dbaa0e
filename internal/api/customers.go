package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dhina-ss/Smart-Canteen/internal/domain"
)

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := c.do(ctx, http.MethodGet, cacheBust("/customers/"), nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.do(ctx, http.MethodPost, "/customers/", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, customer domain.Customer) (*domain.Customer, error) {
	var updated domain.Customer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d/", id), customer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d/", id), nil, nil)
}
