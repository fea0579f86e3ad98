package models

import "time"

// Payment methods accepted by the order endpoint.
const (
	PaymentCOD    = 1 // cash on delivery
	PaymentOnline = 2 // PayOS checkout
)

type Order struct {
	ID              int          `json:"id"`
	OrderCode       string       `json:"order_code"`
	Items           []OrderLine  `json:"order_items"`
	TotalCost       VND          `json:"total_cost"`
	ShipFee         VND          `json:"ship_fee"`
	Note            string       `json:"note"`
	PaymentMethod   int          `json:"payment_method"`
	IsPaid          bool         `json:"is_paid"`
	OrderStatusName string       `json:"order_status"`
	Store           Store        `json:"store"`
	Voucher         *Voucher     `json:"voucher"`
	DeliveryInfo    DeliveryInfo `json:"delivery_info"`
	CreatedDate     time.Time    `json:"created_date"`
}

type OrderLine struct {
	ID        int     `json:"id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice VND     `json:"unit_price"`
}

// Subtotal sums the line prices at the unit price the order was placed with.
func (o Order) Subtotal() VND {
	var sum VND
	for _, it := range o.Items {
		price := it.UnitPrice
		if price == 0 {
			price = it.Product.Price
		}
		sum += price * VND(it.Quantity)
	}
	return sum
}

// Discount derives the voucher reduction from the stored totals. The
// backend persists only the final total, so the reduction is recovered as
// subtotal + ship fee - total, clamped at zero.
func (o Order) Discount() VND {
	d := o.Subtotal() + o.ShipFee - o.TotalCost
	if d < 0 {
		return 0
	}
	return d
}

// ShipFeeQuote is the response of the delivery fee estimate endpoint.
type ShipFeeQuote struct {
	ShipFee    VND     `json:"ship_fee"`
	DistanceKM float64 `json:"distance_km"`
}

// StoreOrderStat is one row of the per-status order count endpoint the
// store dashboard renders.
type StoreOrderStat struct {
	StatusID int `json:"status_id"`
	Count    int `json:"count"`
	Revenue  VND `json:"revenue"`
}

// OrderStatusRecord is one row of the order status catalogue endpoint.
type OrderStatusRecord struct {
	ID         int    `json:"id"`
	StatusName string `json:"status_name"`
}
