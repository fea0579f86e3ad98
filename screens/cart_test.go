package screens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

type tok string

func (t tok) Token() string { return string(t) }

// cartBackend is an in-memory stand-in for the grouped cart endpoints.
type cartBackend struct {
	mu     sync.Mutex
	groups []models.StoreCartGroup
}

func (b *cartBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/carts/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.groups)
	})
	mux.HandleFunc("/carts/update-quantity/", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		defer b.mu.Unlock()
		for gi := range b.groups {
			if l := b.groups[gi].Line(req.ProductID); l != nil {
				l.Quantity += req.Quantity
			}
		}
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/carts/remove-products/", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductIDs []int `json:"product_ids"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gone := map[int]bool{}
		for _, id := range req.ProductIDs {
			gone[id] = true
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		var groups []models.StoreCartGroup
		for _, g := range b.groups {
			var lines []models.CartLine
			for _, l := range g.Products {
				if !gone[l.Product.ID] {
					lines = append(lines, l)
				}
			}
			if len(lines) > 0 {
				g.Products = lines
				groups = append(groups, g)
			}
		}
		b.groups = groups
		w.WriteHeader(204)
	})
	return mux
}

func testCart() []models.StoreCartGroup {
	return []models.StoreCartGroup{
		{
			Store: models.Store{ID: 1, StoreName: "Tiệm A"},
			Products: []models.CartLine{
				{Product: models.Product{ID: 11, Name: "Áo", Price: 50000, Store: models.Store{ID: 1}}, Quantity: 2},
				{Product: models.Product{ID: 12, Name: "Quần", Price: 80000, Store: models.Store{ID: 1}}, Quantity: 1},
			},
		},
		{
			Store: models.Store{ID: 2, StoreName: "Tiệm B"},
			Products: []models.CartLine{
				{Product: models.Product{ID: 21, Name: "Giày", Price: 200000, Store: models.Store{ID: 2}}, Quantity: 1},
			},
		},
	}
}

func newCartScreen(t *testing.T) (*CartScreen, *cartBackend) {
	t.Helper()
	backend := &cartBackend{groups: testCart()}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	f := api.NewFactory(srv.URL, tok("t"), zap.NewNop())
	s := NewCart(f, zap.NewNop())
	require.NoError(t, s.Load(context.Background()))
	return s, backend
}

func TestSelectionAndSubtotal(t *testing.T) {
	s, _ := newCartScreen(t)

	assert.Equal(t, models.VND(0), s.SelectedSubtotal())

	s.ToggleItem(11, true)
	assert.Equal(t, models.VND(100000), s.SelectedSubtotal())

	s.SelectStore(2, true)
	assert.Equal(t, models.VND(300000), s.SelectedSubtotal())

	s.SelectAll(true)
	assert.Equal(t, models.VND(380000), s.SelectedSubtotal())

	s.ToggleItem(11, false)
	assert.Equal(t, models.VND(280000), s.SelectedSubtotal())

	// One basket per store.
	baskets := s.SelectedByStore()
	require.Len(t, baskets, 2)
	assert.Equal(t, 1, baskets[0].Store.ID)
	require.Len(t, baskets[0].Products, 1)
	assert.Equal(t, 12, baskets[0].Products[0].Product.ID)
}

func TestDecreaseAtOneRemovesLine(t *testing.T) {
	s, _ := newCartScreen(t)
	s.ToggleItem(12, true)

	// Quantity 1: decrement removes the whole line.
	require.NoError(t, s.Decrease(context.Background(), 12))

	require.Len(t, s.Groups(), 2)
	assert.Nil(t, s.Groups()[0].Line(12))
	assert.False(t, s.IsSelected(12))
}

func TestRemovingLastLineDropsStoreGroup(t *testing.T) {
	s, _ := newCartScreen(t)

	require.NoError(t, s.Decrease(context.Background(), 21))

	require.Len(t, s.Groups(), 1)
	assert.Equal(t, 1, s.Groups()[0].Store.ID)
}

func TestIncreaseAndDecrease(t *testing.T) {
	s, backend := newCartScreen(t)

	require.NoError(t, s.Increase(context.Background(), 11))
	assert.Equal(t, 3, s.Groups()[0].Line(11).Quantity)

	require.NoError(t, s.Decrease(context.Background(), 11))
	assert.Equal(t, 2, s.Groups()[0].Line(11).Quantity)

	// The backend saw the same deltas.
	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, 2, backend.groups[0].Line(11).Quantity)
}

func TestRemoveSelected(t *testing.T) {
	s, _ := newCartScreen(t)
	s.SelectStore(1, true)

	require.NoError(t, s.RemoveSelected(context.Background()))

	require.Len(t, s.Groups(), 1)
	assert.Equal(t, 2, s.Groups()[0].Store.ID)
	assert.Empty(t, s.Selected())
}

func TestLoadPrunesStaleSelection(t *testing.T) {
	s, backend := newCartScreen(t)
	s.SelectAll(true)

	// Another device emptied store B.
	backend.mu.Lock()
	backend.groups = backend.groups[:1]
	backend.mu.Unlock()

	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.IsSelected(11))
	assert.False(t, s.IsSelected(21))
}

func TestStockConflict(t *testing.T) {
	assert.True(t, StockConflict(api.Classify(400, []byte(`{"error":"Số lượng vượt quá giới hạn sẵn có."}`))))
	assert.True(t, StockConflict(api.Classify(400, []byte(`{"error":"Sản phẩm không tồn tại."}`))))
	assert.True(t, StockConflict(api.Classify(400, []byte(`{"error":"Sản phẩm chưa có trong giỏ hàng."}`))))
	assert.False(t, StockConflict(api.Classify(400, []byte(`{"error":"khác"}`))))
	assert.False(t, StockConflict(nil))
}
