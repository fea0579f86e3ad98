package checkout

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// Gateway is the slice of the backend the checkout flow needs.
type Gateway interface {
	EstimateShipFee(ctx context.Context, deliveryInfoID, productID int) (models.ShipFeeQuote, error)
	CreateOrder(ctx context.Context, req OrderRequest) (models.Order, error)
	CreatePayment(ctx context.Context, orderID int) (PaymentLink, error)
	DeleteOrder(ctx context.Context, orderID int) error
}

// OrderRequest is the order creation payload.
type OrderRequest struct {
	Items          []OrderItemRequest `json:"items"`
	DeliveryInfoID int                `json:"delivery_info_id"`
	Note           string             `json:"note,omitempty"`
	PaymentMethod  int                `json:"payment_method"`
	Voucher        *int               `json:"voucher,omitempty"`
}

type OrderItemRequest struct {
	Product  int `json:"product"`
	Quantity int `json:"quantity"`
}

// PaymentLink is the hosted checkout session for an online payment.
type PaymentLink struct {
	PaymentURL string `json:"payment_url"`
	OrderCode  int64  `json:"payos_order_code"`
}

var (
	ErrNoItems       = errors.New("checkout: no items selected")
	ErrMixedStores   = errors.New("checkout: items belong to different stores")
	ErrNoAddress     = errors.New("checkout: no delivery address selected")
	ErrShipFeeNeeded = errors.New("checkout: ship fee not fetched for the selected address")
)

// Checkout carries the state of one order being assembled: the selected
// lines of a single store, the address, an optional voucher and the ship
// fee quote. Totals are recomputed from this state on demand.
type Checkout struct {
	gw  Gateway
	log *zap.Logger

	lines   []models.CartLine
	voucher *models.Voucher
	note    string

	deliveryID int
	// quote holds the last fee estimate and the address it was computed
	// for. An address change drops it, so a stale fee can never reach a
	// submitted order.
	quote        *models.ShipFeeQuote
	quoteAddress int
}

// New starts a checkout over the selected lines. All lines must belong to
// one store, which is also what the backend enforces on creation.
func New(gw Gateway, log *zap.Logger, lines []models.CartLine) (*Checkout, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	storeID := lines[0].Product.Store.ID
	for _, l := range lines[1:] {
		if l.Product.Store.ID != storeID {
			return nil, ErrMixedStores
		}
	}
	ls := make([]models.CartLine, len(lines))
	copy(ls, lines)
	return &Checkout{gw: gw, log: log, lines: ls}, nil
}

func (c *Checkout) Lines() []models.CartLine { return c.lines }

func (c *Checkout) SetNote(note string) { c.note = note }

func (c *Checkout) Subtotal() models.VND {
	return Subtotal(c.lines)
}

// EligibleVouchers filters the wallet against the current subtotal.
func (c *Checkout) EligibleVouchers(vouchers []models.Voucher, now time.Time) []models.Voucher {
	return Eligible(vouchers, c.Subtotal(), now)
}

// SelectVoucher applies a voucher, nil clears it. Ineligible vouchers are
// rejected here and rechecked by the backend on submission.
func (c *Checkout) SelectVoucher(v *models.Voucher, now time.Time) error {
	if v == nil {
		c.voucher = nil
		return nil
	}
	if !v.UsableAt(now) || c.Subtotal() < v.MinOrderValue {
		return errors.New("checkout: voucher not eligible for this order")
	}
	vv := *v
	c.voucher = &vv
	return nil
}

func (c *Checkout) Voucher() *models.Voucher { return c.voucher }

// SelectAddress picks the delivery address. Switching to a different
// address drops the ship fee quote until FetchShipFee runs again.
func (c *Checkout) SelectAddress(deliveryInfoID int) {
	if deliveryInfoID == c.deliveryID {
		return
	}
	c.deliveryID = deliveryInfoID
	c.quote = nil
}

// FetchShipFee asks the backend for the delivery fee of the selected
// address, keyed by the first line's product as the basket representative.
// Failures leave the fee unknown and can simply be retried.
func (c *Checkout) FetchShipFee(ctx context.Context) error {
	if c.deliveryID == 0 {
		return ErrNoAddress
	}
	q, err := c.gw.EstimateShipFee(ctx, c.deliveryID, c.lines[0].Product.ID)
	if err != nil {
		c.log.Warn("ship fee estimate failed", zap.Int("delivery_info_id", c.deliveryID), zap.Error(err))
		return err
	}
	c.quote = &q
	c.quoteAddress = c.deliveryID
	return nil
}

// ShipFee returns the current quote; ok is false while no quote exists for
// the selected address.
func (c *Checkout) ShipFee() (models.VND, bool) {
	if c.quote == nil || c.quoteAddress != c.deliveryID {
		return 0, false
	}
	return c.quote.ShipFee, true
}

func (c *Checkout) Discount() models.VND {
	return Discount(c.Subtotal(), c.voucher)
}

// Total is the amount due; ok is false until the ship fee is known.
func (c *Checkout) Total() (models.VND, bool) {
	fee, ok := c.ShipFee()
	if !ok {
		return 0, false
	}
	sub := c.Subtotal()
	return Total(sub, Discount(sub, c.voucher), fee), true
}

// CanSubmit reports the first missing precondition, nil when the order is
// ready to place.
func (c *Checkout) CanSubmit() error {
	if len(c.lines) == 0 {
		return ErrNoItems
	}
	if c.deliveryID == 0 {
		return ErrNoAddress
	}
	if _, ok := c.ShipFee(); !ok {
		return ErrShipFeeNeeded
	}
	return nil
}

// Result is a placed order, plus the payment session when paying online.
type Result struct {
	Order   models.Order
	Payment *PaymentLink
}

// Submit places the order. COD orders are done once created. Online orders
// additionally open a payment session; if that second step fails the fresh
// order is deleted again so no unpayable order lingers.
func (c *Checkout) Submit(ctx context.Context, paymentMethod int) (*Result, error) {
	if err := c.CanSubmit(); err != nil {
		return nil, err
	}

	req := OrderRequest{
		DeliveryInfoID: c.deliveryID,
		Note:           c.note,
		PaymentMethod:  paymentMethod,
	}
	for _, l := range c.lines {
		req.Items = append(req.Items, OrderItemRequest{Product: l.Product.ID, Quantity: l.Quantity})
	}
	if c.voucher != nil {
		req.Voucher = &c.voucher.ID
	}

	order, err := c.gw.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	c.log.Info("order placed", zap.Int("order_id", order.ID), zap.Int("payment_method", paymentMethod))

	if paymentMethod != models.PaymentOnline {
		return &Result{Order: order}, nil
	}

	link, err := c.gw.CreatePayment(ctx, order.ID)
	if err != nil {
		if delErr := c.gw.DeleteOrder(ctx, order.ID); delErr != nil {
			c.log.Error("could not roll back order after payment setup failure",
				zap.Int("order_id", order.ID), zap.Error(delErr))
		}
		return nil, err
	}
	return &Result{Order: order, Payment: &link}, nil
}
