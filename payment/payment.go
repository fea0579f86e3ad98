package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/checkout"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// Hosted checkout sessions expire after 15 minutes; waiting longer than
// that cannot succeed.
const sessionExpiry = 15 * time.Minute

// ErrAbandoned is returned when the payment window expires or the wait is
// cancelled before the gateway redirects back.
var ErrAbandoned = errors.New("payment: session abandoned")

// Outcome is what the redirect back from the gateway resolved to.
type Outcome struct {
	OrderID int
	Paid    bool
	// Cancelled means the customer backed out and the order was deleted.
	Cancelled bool
}

// Flow finalizes online payments: it serves the gateway's success and
// cancel return routes on localhost and settles the order accordingly.
type Flow struct {
	factory *api.Factory
	log     *zap.Logger
	addr    string
}

func NewFlow(factory *api.Factory, host string, port int, log *zap.Logger) *Flow {
	return &Flow{
		factory: factory,
		log:     log,
		addr:    fmt.Sprintf("%s:%d", host, port),
	}
}

// Await serves the return routes until the customer comes back from the
// hosted checkout page, then settles the order: a success return marks it
// paid, a cancel return deletes it again. The wait is bounded by the
// session expiry.
func (f *Flow) Await(ctx context.Context, orderID int, link checkout.PaymentLink) (*Outcome, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	results := make(chan Outcome, 1)

	engine.GET("/payment-success/:orderID", func(c *gin.Context) {
		if !returnedFor(c, orderID) {
			c.String(http.StatusNotFound, "Không tìm thấy đơn hàng.")
			return
		}
		if err := f.confirmPaid(c.Request.Context(), orderID, link, c.Query("status")); err != nil {
			f.log.Error("could not record payment", zap.Int("order_id", orderID), zap.Error(err))
			c.String(http.StatusBadGateway, "Không thể xác nhận thanh toán, vui lòng liên hệ hỗ trợ.")
			return
		}
		c.String(http.StatusOK, "Thanh toán thành công! Bạn có thể đóng cửa sổ này.")
		select {
		case results <- Outcome{OrderID: orderID, Paid: true}:
		default:
		}
	})

	engine.GET("/payment-cancel/:orderID", func(c *gin.Context) {
		if !returnedFor(c, orderID) {
			c.String(http.StatusNotFound, "Không tìm thấy đơn hàng.")
			return
		}
		if err := f.cancelOrder(c.Request.Context(), orderID); err != nil {
			f.log.Error("could not roll back cancelled payment", zap.Int("order_id", orderID), zap.Error(err))
		}
		c.String(http.StatusOK, "Đã hủy thanh toán. Bạn có thể đóng cửa sổ này.")
		select {
		case results <- Outcome{OrderID: orderID, Cancelled: true}:
		default:
		}
	})

	srv := &http.Server{Addr: f.addr, Handler: engine}
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	f.log.Info("waiting for payment return",
		zap.Int("order_id", orderID), zap.String("listen", f.addr))

	select {
	case out := <-results:
		return &out, nil
	case err := <-serveErr:
		return nil, fmt.Errorf("payment: callback server failed: %w", err)
	case <-time.After(sessionExpiry):
		return nil, ErrAbandoned
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// returnedFor checks that the redirect's order id is the awaited one. A
// return carrying another id (stale tab, stray request) must not settle
// this order.
func returnedFor(c *gin.Context, awaited int) bool {
	id, err := strconv.Atoi(c.Param("orderID"))
	return err == nil && id == awaited
}

// confirmPaid records the settled payment on the order.
func (f *Flow) confirmPaid(ctx context.Context, orderID int, link checkout.PaymentLink, gatewayStatus string) error {
	if gatewayStatus == "" {
		gatewayStatus = "PAID"
	}
	req := map[string]any{
		"is_paid":          true,
		"paid_at":          time.Now().Format(time.RFC3339),
		"payos_status":     gatewayStatus,
		"payos_order_code": link.OrderCode,
	}
	return f.factory.Authed().Post(ctx, api.WithID(api.UpdatePaymentStatus, orderID), req, nil)
}

// cancelOrder removes the order a backed-out payment was created for. The
// order is fetched first so the log keeps what was dropped.
func (f *Flow) cancelOrder(ctx context.Context, orderID int) error {
	var order models.Order
	if err := f.factory.Authed().Get(ctx, api.WithID(api.OrderDetail, orderID), nil, &order); err != nil {
		return err
	}
	f.log.Info("deleting unpaid order",
		zap.Int("order_id", orderID), zap.String("order_code", order.OrderCode))
	return f.factory.Authed().Delete(ctx, api.WithID(api.OrderDetail, orderID), nil)
}
