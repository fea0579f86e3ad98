package screens

import (
	"context"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/checkout"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// OrderGateway adapts the API client to what the checkout flow needs.
type OrderGateway struct {
	factory *api.Factory
}

func NewOrderGateway(f *api.Factory) *OrderGateway {
	return &OrderGateway{factory: f}
}

func (g *OrderGateway) EstimateShipFee(ctx context.Context, deliveryInfoID, productID int) (models.ShipFeeQuote, error) {
	req := map[string]int{
		"delivery_info_id": deliveryInfoID,
		"product_id":       productID,
	}
	var quote models.ShipFeeQuote
	err := g.factory.Authed().Post(ctx, api.ShipFee, req, &quote)
	return quote, err
}

func (g *OrderGateway) CreateOrder(ctx context.Context, req checkout.OrderRequest) (models.Order, error) {
	var order models.Order
	err := g.factory.Authed().Post(ctx, api.Orders, req, &order)
	return order, err
}

func (g *OrderGateway) CreatePayment(ctx context.Context, orderID int) (checkout.PaymentLink, error) {
	var link checkout.PaymentLink
	err := g.factory.Authed().Post(ctx, api.WithID(api.CreatePayment, orderID), nil, &link)
	return link, err
}

func (g *OrderGateway) DeleteOrder(ctx context.Context, orderID int) error {
	return g.factory.Authed().Delete(ctx, api.WithID(api.OrderDetail, orderID), nil)
}
