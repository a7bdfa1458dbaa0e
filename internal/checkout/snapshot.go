package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dhina-ss/Smart-Canteen/internal/domain"
)

// Snapshot is the client-held view of the backend at the moment a checkout
// starts. It may be stale relative to the backend by the time writes happen;
// the workflow accepts that and clamps rather than corrects.
type Snapshot struct {
	Customers []domain.Customer
	Items     []domain.Item
	Sales     []domain.Sale
}

func (s *Snapshot) CustomerByPhone(phone string) *domain.Customer {
	phone = strings.TrimSpace(phone)
	for i := range s.Customers {
		if s.Customers[i].Phone == phone {
			return &s.Customers[i]
		}
	}
	return nil
}

func (s *Snapshot) ItemByID(id int64) *domain.Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// LoadSnapshot fetches customers, items, and sales concurrently. Any fetch
// failure fails the load; a checkout cannot start from a partial view.
func (w *Workflow) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snap    Snapshot
		wg      sync.WaitGroup
		custErr error
		itemErr error
		saleErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Customers, custErr = w.api.ListCustomers(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Items, itemErr = w.api.ListItems(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Sales, saleErr = w.api.ListSales(ctx)
	}()
	wg.Wait()

	if custErr != nil {
		return nil, fmt.Errorf("load customers: %w", custErr)
	}
	if itemErr != nil {
		return nil, fmt.Errorf("load items: %w", itemErr)
	}
	if saleErr != nil {
		return nil, fmt.Errorf("load sales: %w", saleErr)
	}
	return &snap, nil
}
