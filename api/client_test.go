package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

// mutableToken swaps credentials mid-test the way a re-login does.
type mutableToken struct{ token string }

func (m *mutableToken) Token() string { return m.token }

func TestWithID(t *testing.T) {
	assert.Equal(t, "orders/42/", WithID(OrderDetail, 42))
	assert.Equal(t, "orders/7/create-payos-payment/", WithID(CreatePayment, 7))
	// No placeholder: path unchanged.
	assert.Equal(t, "orders/", WithID(Orders, 42))
}

func TestPublicSendsNoCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := NewFactory(srv.URL, staticToken("secret"), zap.NewNop())
	require.NoError(t, f.Public().Get(context.Background(), Products, nil, nil))
}

func TestAuthedReadsCurrentCredential(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	creds := &mutableToken{token: "first"}
	f := NewFactory(srv.URL, creds, zap.NewNop())

	require.NoError(t, f.Authed().Get(context.Background(), Cart, nil, nil))
	creds.token = "second"
	require.NoError(t, f.Authed().Get(context.Background(), Cart, nil, nil))

	assert.Equal(t, []string{"Bearer first", "Bearer second"}, got)
}

func TestGetDecodesPaginatedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{
			"count": 12,
			"next": "http://x/products/?page=3",
			"previous": "http://x/products/?page=1",
			"results": [{"id": 1, "name": "Áo khoác", "price": "150000.00"}]
		}`))
	}))
	defer srv.Close()

	f := NewFactory(srv.URL, nil, zap.NewNop())
	var page models.Page[models.Product]
	q := map[string][]string{"page": {"2"}}
	require.NoError(t, f.Public().Get(context.Background(), Products, q, &page))

	assert.Equal(t, 12, page.Count)
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())
	require.Len(t, page.Results, 1)
	assert.Equal(t, models.VND(150000), page.Results[0].Price)
}

func TestErrorResponsesClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/carts/add-product/":
			w.WriteHeader(400)
			w.Write([]byte(`{"error": "Số lượng vượt quá giới hạn sẵn có."}`))
		default:
			w.WriteHeader(401)
			w.Write([]byte(`{"detail": "expired"}`))
		}
	}))
	defer srv.Close()

	f := NewFactory(srv.URL, staticToken("t"), zap.NewNop())

	err := f.Authed().Post(context.Background(), CartAdd, map[string]int{"product_id": 1, "quantity": 2}, nil)
	require.Error(t, err)
	assert.True(t, IsBusiness(err))
	assert.Equal(t, "Số lượng vượt quá giới hạn sẵn có.", BusinessMessage(err))

	err = f.Authed().Get(context.Background(), Cart, nil, nil)
	assert.True(t, IsAuthExpired(err))
}

func TestNetworkFailureIsTransport(t *testing.T) {
	f := NewFactory("http://127.0.0.1:1", nil, zap.NewNop())
	err := f.Public().Get(context.Background(), Products, nil, nil)
	assert.True(t, IsTransport(err))
}

func TestDeleteSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(204)
	}))
	defer srv.Close()

	f := NewFactory(srv.URL, staticToken("t"), zap.NewNop())
	err := f.Authed().Delete(context.Background(), CartRemove, map[string][]int{"product_ids": {1, 2}})
	assert.NoError(t, err)
}

func TestPostMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Tiệm đồ cũ", r.FormValue("store_name"))
		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)
		w.Write([]byte(`{"id": 9, "store_name": "Tiệm đồ cũ"}`))
	}))
	defer srv.Close()

	f := NewFactory(srv.URL, staticToken("t"), zap.NewNop())
	var store models.Store
	err := f.Authed().PostMultipart(context.Background(), Stores,
		map[string]string{"store_name": "Tiệm đồ cũ"},
		[]Upload{{Field: "avatar", FileName: "logo.png", Reader: strings.NewReader("png-bytes")}},
		&store, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 9, store.ID)
}

func TestContextCancellationAborts(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	f := NewFactory(srv.URL, nil, zap.NewNop())
	err := f.Public().Get(ctx, Products, nil, nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}
