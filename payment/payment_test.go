package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/checkout"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

type tok string

func (t tok) Token() string { return string(t) }

type paymentBackend struct {
	mu        sync.Mutex
	confirmed []map[string]any
	deleted   []string
}

func (b *paymentBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/55/update-payos-status/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		b.confirmed = append(b.confirmed, body)
		b.mu.Unlock()
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/orders/55/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			b.mu.Lock()
			b.deleted = append(b.deleted, r.URL.Path)
			b.mu.Unlock()
			w.WriteHeader(204)
			return
		}
		json.NewEncoder(w).Encode(models.Order{ID: 55, OrderCode: "OD-55"})
	})
	return mux
}

// get retries until the local callback server is listening.
func get(t *testing.T, url string) *http.Response {
	t.Helper()
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			return resp
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("callback server never came up: %v", err)
	return nil
}

func TestAwaitSuccessReturn(t *testing.T) {
	backend := &paymentBackend{}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	f := api.NewFactory(srv.URL, tok("t"), zap.NewNop())
	flow := NewFlow(f, "127.0.0.1", 38475, zap.NewNop())
	link := checkout.PaymentLink{PaymentURL: "https://pay.example/x", OrderCode: 777}

	type result struct {
		out *Outcome
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := flow.Await(context.Background(), 55, link)
		done <- result{out, err}
	}()

	resp := get(t, "http://127.0.0.1:38475/payment-success/55?status=PAID")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := <-done
	require.NoError(t, r.err)
	assert.True(t, r.out.Paid)
	assert.False(t, r.out.Cancelled)
	assert.Equal(t, 55, r.out.OrderID)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	require.Len(t, backend.confirmed, 1)
	assert.Equal(t, true, backend.confirmed[0]["is_paid"])
	assert.Equal(t, "PAID", backend.confirmed[0]["payos_status"])
	assert.EqualValues(t, 777, backend.confirmed[0]["payos_order_code"])
	assert.Empty(t, backend.deleted)
}

func TestAwaitCancelReturnDeletesOrder(t *testing.T) {
	backend := &paymentBackend{}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	f := api.NewFactory(srv.URL, tok("t"), zap.NewNop())
	flow := NewFlow(f, "127.0.0.1", 38476, zap.NewNop())

	done := make(chan *Outcome, 1)
	go func() {
		out, err := flow.Await(context.Background(), 55, checkout.PaymentLink{OrderCode: 777})
		require.NoError(t, err)
		done <- out
	}()

	resp := get(t, "http://127.0.0.1:38476/payment-cancel/55")
	resp.Body.Close()

	out := <-done
	assert.False(t, out.Paid)
	assert.True(t, out.Cancelled)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Empty(t, backend.confirmed)
	require.Len(t, backend.deleted, 1)
	assert.Equal(t, "/orders/55/", backend.deleted[0])
}

func TestAwaitIgnoresReturnsForOtherOrders(t *testing.T) {
	backend := &paymentBackend{}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	f := api.NewFactory(srv.URL, tok("t"), zap.NewNop())
	flow := NewFlow(f, "127.0.0.1", 38478, zap.NewNop())
	link := checkout.PaymentLink{PaymentURL: "https://pay.example/x", OrderCode: 777}

	type result struct {
		out *Outcome
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := flow.Await(context.Background(), 55, link)
		done <- result{out, err}
	}()

	// Returns carrying a different order id must not settle the wait.
	resp := get(t, "http://127.0.0.1:38478/payment-success/999?status=PAID")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = get(t, "http://127.0.0.1:38478/payment-cancel/999")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	select {
	case r := <-done:
		t.Fatalf("wait settled on a foreign return: %+v %v", r.out, r.err)
	case <-time.After(100 * time.Millisecond):
	}

	backend.mu.Lock()
	assert.Empty(t, backend.confirmed)
	assert.Empty(t, backend.deleted)
	backend.mu.Unlock()

	resp = get(t, "http://127.0.0.1:38478/payment-success/55?status=PAID")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := <-done
	require.NoError(t, r.err)
	assert.True(t, r.out.Paid)
}

func TestAwaitCancelledContext(t *testing.T) {
	f := api.NewFactory("http://127.0.0.1:1", nil, zap.NewNop())
	flow := NewFlow(f, "127.0.0.1", 38477, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := flow.Await(ctx, 1, checkout.PaymentLink{})
	assert.ErrorIs(t, err, context.Canceled)
}
