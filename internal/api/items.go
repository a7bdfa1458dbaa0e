package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dhina-ss/Smart-Canteen/internal/domain"
	"go.uber.org/zap"
)

func (c *Client) ListItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, http.MethodGet, cacheBust("/items/"), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d/", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.Item, error) {
	var item domain.Item
	if err := c.do(ctx, http.MethodPost, "/items/", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces the full item resource.
func (c *Client) UpdateItem(ctx context.Context, id int64, item domain.Item) (*domain.Item, error) {
	var updated domain.Item
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d/", id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// PatchItemStock updates only the stock field of an item.
func (c *Client) PatchItemStock(ctx context.Context, id int64, stock int) (*domain.Item, error) {
	var updated domain.Item
	body := map[string]int{"stock": stock}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/items/%d/", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d/", id), nil, nil)
}

func (c *Client) LowStockItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, http.MethodGet, "/items/low_stock/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItemStock fetches the current item, carries every other field forward
// unchanged, and replaces the resource with the new stock level. If the full
// replace is rejected it falls back to a partial update carrying only the
// stock field.
func (c *Client) UpdateItemStock(ctx context.Context, id int64, stock int) (*domain.Item, error) {
	current, err := c.GetItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch item %d before stock update: %w", id, err)
	}

	current.Stock = stock
	updated, putErr := c.UpdateItem(ctx, id, *current)
	if putErr == nil {
		return updated, nil
	}

	c.logger.Warn("full item replace failed, falling back to partial stock update",
		zap.Int64("item_id", id),
		zap.Error(putErr))

	patched, patchErr := c.PatchItemStock(ctx, id, stock)
	if patchErr != nil {
		return nil, fmt.Errorf("update stock for item %d: %w", id, putErr)
	}
	return patched, nil
}
