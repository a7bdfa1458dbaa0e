package stock

import (
	"context"

	"github.com/dhina-ss/Smart-Canteen/internal/api"
	"github.com/dhina-ss/Smart-Canteen/internal/domain"
	"go.uber.org/zap"
)

// Deduction is one sold line to subtract from inventory.
type Deduction struct {
	ItemID   int64
	Quantity int
}

// Update is a planned per-item stock write.
type Update struct {
	ItemID   int64
	NewStock int
}

// Reconciler pushes post-sale stock levels to the backend. Every step is
// best effort: a sale that already exists must never be rolled back because
// an inventory write failed.
type Reconciler struct {
	api    *api.Client
	logger *zap.Logger
}

func NewReconciler(client *api.Client, logger *zap.Logger) *Reconciler {
	return &Reconciler{api: client, logger: logger}
}

// Plan resolves each deduction against the last-fetched item list and
// computes the post-sale level. Stock is clamped at zero: a snapshot that
// went stale after validation must not push a negative quantity into the
// backend. Unresolvable items are skipped with a warning.
func (r *Reconciler) Plan(items []domain.Item, deductions []Deduction) []Update {
	byID := make(map[int64]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	updates := make([]Update, 0, len(deductions))
	for _, d := range deductions {
		item, ok := byID[d.ItemID]
		if !ok {
			r.logger.Warn("sold item not found in item list, skipping stock update",
				zap.Int64("item_id", d.ItemID))
			continue
		}
		newStock := item.Stock - d.Quantity
		if newStock < 0 {
			newStock = 0
		}
		updates = append(updates, Update{ItemID: d.ItemID, NewStock: newStock})
	}
	return updates
}

// Apply pushes updates sequentially, one call per item, continuing past
// individual failures. It returns the number of failed updates.
func (r *Reconciler) Apply(ctx context.Context, updates []Update) int {
	failed := 0
	for _, u := range updates {
		if _, err := r.api.UpdateItemStock(ctx, u.ItemID, u.NewStock); err != nil {
			r.logger.Error("stock update failed",
				zap.Int64("item_id", u.ItemID),
				zap.Int("new_stock", u.NewStock),
				zap.Error(err))
			failed++
			continue
		}
		r.logger.Info("stock updated",
			zap.Int64("item_id", u.ItemID),
			zap.Int("new_stock", u.NewStock))
	}
	return failed
}

// Reconcile plans and applies stock updates for a completed sale, then
// refreshes the item list. The refresh is non-fatal; on failure the caller
// keeps its stale snapshot.
func (r *Reconciler) Reconcile(ctx context.Context, items []domain.Item, deductions []Deduction) (failed int, refreshed []domain.Item) {
	updates := r.Plan(items, deductions)
	if len(updates) == 0 {
		r.logger.Warn("no stock updates to process")
		return 0, nil
	}

	failed = r.Apply(ctx, updates)

	refreshed, err := r.api.ListItems(ctx)
	if err != nil {
		r.logger.Warn("item list refresh after reconciliation failed", zap.Error(err))
		return failed, nil
	}
	return failed, refreshed
}
