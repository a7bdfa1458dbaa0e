package checkout

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dhina-ss/Smart-Canteen/internal/domain"
	"github.com/shopspring/decimal"
)

// fakeBackend emulates the canteen REST backend for workflow tests.
type fakeBackend struct {
	t *testing.T

	mu        sync.Mutex
	customers []domain.Customer
	items     []domain.Item
	sales     []domain.Sale

	rejectInvoiceNumber bool
	failItemUpdates     map[int64]bool

	customerPosts int
	salePosts     int
	salePayloads  []domain.CreateSaleRequest

	srv *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{t: t, failItemUpdates: map[int64]bool{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.customers)
	})
	mux.HandleFunc("POST /customers/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.customerPosts++

		var req domain.CreateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		customer := domain.Customer{
			ID:    int64(len(b.customers) + 1),
			Name:  req.Name,
			Phone: req.Phone,
			Email: req.Email,
		}
		b.customers = append(b.customers, customer)
		writeJSON(w, http.StatusCreated, customer)
	})

	mux.HandleFunc("GET /items/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.items)
	})
	mux.HandleFunc("GET /items/{id}/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		item := b.itemByID(pathID(r))
		if item == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, item)
	})
	mux.HandleFunc("PUT /items/{id}/", func(w http.ResponseWriter, r *http.Request) {
		b.updateItem(w, r)
	})
	mux.HandleFunc("PATCH /items/{id}/", func(w http.ResponseWriter, r *http.Request) {
		b.updateItem(w, r)
	})

	mux.HandleFunc("GET /sales/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.sales)
	})
	mux.HandleFunc("POST /sales/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.salePosts++

		var req domain.CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.salePayloads = append(b.salePayloads, req)

		if b.rejectInvoiceNumber && req.InvoiceNumber != "" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"invoice_number": ["sale with this invoice number already exists."]}`)
			return
		}

		invoiceNumber := req.InvoiceNumber
		if invoiceNumber == "" {
			invoiceNumber = fmt.Sprintf("INV-%08X", len(b.sales)+1)
		}

		items := make([]domain.SaleItem, 0, len(req.Items))
		for i, it := range req.Items {
			items = append(items, domain.SaleItem{
				ID:        int64(i + 1),
				Item:      it.Item,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
		sale := domain.Sale{
			ID:            int64(len(b.sales) + 1),
			InvoiceNumber: invoiceNumber,
			Customer:      req.Customer,
			CreatedAt:     time.Now(),
			Items:         items,
			TotalAmount:   mustDecimal(b.t, req.TotalAmount),
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: req.PaymentStatus,
			Notes:         req.Notes,
		}
		b.sales = append(b.sales, sale)
		writeJSON(w, http.StatusCreated, sale)
	})

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) updateItem(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := pathID(r)
	if b.failItemUpdates[id] {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "item update unavailable")
		return
	}
	item := b.itemByID(id)
	if item == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var body struct {
		Stock *int `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Stock == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	item.Stock = *body.Stock
	writeJSON(w, http.StatusOK, item)
}

func (b *fakeBackend) itemByID(id int64) *domain.Item {
	for i := range b.items {
		if b.items[i].ID == id {
			return &b.items[i]
		}
	}
	return nil
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}
