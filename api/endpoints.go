package api

import (
	"strconv"
	"strings"
)

// Backend endpoint catalogue. Paths are relative to the configured base URL
// and carry an {id} placeholder where the caller must substitute one.
const (
	Login         = "login/"
	Register      = "register/"
	CurrentUser   = "users/current-user/"
	UpdateProfile = "users/update-profile/"

	Categories = "categories/"

	Products        = "products/"
	ProductDetail   = "products/{id}/"
	ProductComments = "products/{id}/comments/"
	ProductCreate   = "products/create/"
	ProductUpdate   = "products/{id}/update-my-product/"
	ProductDelete   = "products/{id}/delete-my-product/"

	Stores          = "stores/"
	StoreDetail     = "stores/{id}/"
	StoreProducts   = "stores/{id}/products/"
	MyStore         = "stores/my-store/"
	UpdateMyStore   = "stores/update-my-store/"
	MyStoreProducts = "stores/my-products/"
	StoreOrders     = "stores/my-orders-store/"
	StoreOrderStats = "stores/orders-of-status/"
	StoreOrderState = "stores/update-order-status/"

	Cart         = "carts/"
	CartAdd      = "carts/add-product/"
	CartQuantity = "carts/update-quantity/"
	CartRemove   = "carts/remove-products/"

	Orders              = "orders/"
	OrderDetail         = "orders/{id}/"
	MyOrders            = "orders/my-orders/"
	CustomerOrderState  = "orders/{id}/update-status/"
	CreatePayment       = "orders/{id}/create-payos-payment/"
	UpdatePaymentStatus = "orders/{id}/update-payos-status/"

	OrderStatuses = "order-status/"
	DeliveryInfos = "delivery-infos/"
	DeliveryInfo  = "delivery-infos/{id}/"
	Vouchers      = "vouchers/"
	ShipFee       = "ship-fee/"
)

// WithID substitutes the {id} placeholder of a catalogue path.
func WithID(path string, id int) string {
	return strings.Replace(path, "{id}", strconv.Itoa(id), 1)
}
