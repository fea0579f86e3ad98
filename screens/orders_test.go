package screens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

func statusRecords() []models.OrderStatusRecord {
	return []models.OrderStatusRecord{
		{ID: 1, StatusName: "Chờ xác nhận"},
		{ID: 2, StatusName: "Chờ lấy hàng"},
		{ID: 3, StatusName: "Đang giao hàng"},
		{ID: 4, StatusName: "Yêu cầu hủy"},
		{ID: 5, StatusName: "Đã hủy"},
		{ID: 6, StatusName: "Hoàn thành"},
	}
}

func ordersBackend(t *testing.T, transitions *[]map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/order-status/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(statusRecords())
	})
	mux.HandleFunc("/orders/my-orders/", func(w http.ResponseWriter, r *http.Request) {
		page := models.Page[models.Order]{
			Count: 2,
			Results: []models.Order{
				{ID: 1, OrderCode: "OD-1", OrderStatusName: "Chờ xác nhận"},
				{ID: 2, OrderCode: "OD-2", OrderStatusName: "Đang giao hàng"},
			},
		}
		json.NewEncoder(w).Encode(page)
	})
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			*transitions = append(*transitions, body)
			w.Write([]byte(`{}`))
			return
		}
		json.NewEncoder(w).Encode(models.Order{ID: 1, OrderCode: "OD-1", OrderStatusName: "Chờ xác nhận"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOrdersScreenActions(t *testing.T) {
	var transitions []map[string]any
	srv := ordersBackend(t, &transitions)
	f := api.NewFactory(srv.URL, tok("t"), zap.NewNop())

	s := NewOrders(f, zap.NewNop())
	require.NoError(t, s.LoadStatuses(context.Background()))
	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Orders(), 2)

	pending := s.Orders()[0]
	shipping := s.Orders()[1]

	assert.Equal(t, models.StatusPending, s.StatusOf(pending))
	assert.Equal(t, models.StatusShipping, s.StatusOf(shipping))

	acts := s.Actions(pending)
	require.Len(t, acts, 1)
	assert.Equal(t, models.StatusCancelRequested, acts[0].Target)

	acts = s.Actions(shipping)
	require.Len(t, acts, 1)
	assert.Equal(t, models.StatusCompleted, acts[0].Target)

	// A transition outside the action table never reaches the backend.
	err := s.RequestTransition(context.Background(), pending, models.StatusCompleted)
	require.Error(t, err)
	assert.Empty(t, transitions)

	require.NoError(t, s.RequestTransition(context.Background(), pending, models.StatusCancelRequested))
	require.Len(t, transitions, 1)
	assert.EqualValues(t, 4, transitions[0]["order_status"])
}

func TestOrderWithUnknownLabelHasNoActions(t *testing.T) {
	var transitions []map[string]any
	srv := ordersBackend(t, &transitions)
	f := api.NewFactory(srv.URL, tok("t"), zap.NewNop())

	s := NewOrders(f, zap.NewNop())
	require.NoError(t, s.LoadStatuses(context.Background()))

	o := models.Order{ID: 9, OrderStatusName: "trạng thái lạ"}
	assert.Equal(t, models.StatusUnknown, s.StatusOf(o))
	assert.Empty(t, s.Actions(o))
}

func TestStoreOrdersActions(t *testing.T) {
	mux := http.NewServeMux()
	var patches []map[string]any
	mux.HandleFunc("/order-status/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(statusRecords())
	})
	mux.HandleFunc("/stores/my-orders-store/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Page[models.Order]{
			Count: 1,
			Results: []models.Order{
				{ID: 5, OrderCode: "OD-5", OrderStatusName: "Yêu cầu hủy"},
			},
		})
	})
	mux.HandleFunc("/stores/update-order-status/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		patches = append(patches, body)
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f := api.NewFactory(srv.URL, tok("t"), zap.NewNop())
	s := NewStoreOrders(f, zap.NewNop())
	require.NoError(t, s.LoadStatuses(context.Background()))
	require.NoError(t, s.SwitchTab(context.Background(), models.StatusCancelRequested))
	require.Len(t, s.Orders(), 1)

	o := s.Orders()[0]
	acts := s.Actions(o)
	require.Len(t, acts, 2)
	assert.Equal(t, models.StatusAwaitingPickup, acts[0].Target)
	assert.Equal(t, models.StatusCancelled, acts[1].Target)

	// The store cannot complete an order, only the customer can.
	require.Error(t, s.UpdateStatus(context.Background(), o, models.StatusCompleted))
	assert.Empty(t, patches)

	require.NoError(t, s.UpdateStatus(context.Background(), o, models.StatusCancelled))
	require.Len(t, patches, 1)
	assert.EqualValues(t, 5, patches[0]["order_id"])
	assert.EqualValues(t, 5, patches[0]["order_status"])
}

func TestDeliveryInputValidate(t *testing.T) {
	ok := DeliveryInput{
		Name:        "Nguyễn Văn An",
		PhoneNumber: "0912345678",
		Address:     "12 Nguyễn Trãi, Phường 3, Quận 5, TP.HCM",
	}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Name = "A"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.Name = "An123"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.PhoneNumber = "0123456789" // 01x is not a mobile prefix
	assert.Error(t, bad.Validate())

	bad = ok
	bad.PhoneNumber = "091234567"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.Address = "quá ngắn"
	assert.Error(t, bad.Validate())
}
