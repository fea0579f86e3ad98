package screens

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// OrdersScreen is the customer's order history: one tab per status, search
// and paging, and the limited status transitions a customer may request.
type OrdersScreen struct {
	factory *api.Factory
	log     *zap.Logger

	statusIdx *models.StatusIndex

	Tab     models.OrderStatus // StatusUnknown means all
	Search  string
	PageNum int

	page models.Page[models.Order]
}

func NewOrders(f *api.Factory, log *zap.Logger) *OrdersScreen {
	return &OrdersScreen{factory: f, log: log, PageNum: 1}
}

// LoadStatuses fetches the status catalogue once and builds the index that
// resolves order payload labels onto the closed status set.
func (s *OrdersScreen) LoadStatuses(ctx context.Context) error {
	var records []models.OrderStatusRecord
	if err := s.factory.Public().Get(ctx, api.OrderStatuses, nil, &records); err != nil {
		return err
	}
	s.statusIdx = models.NewStatusIndex(records)
	return nil
}

// Load fetches the current tab's page.
func (s *OrdersScreen) Load(ctx context.Context) error {
	q := url.Values{}
	if s.Tab != models.StatusUnknown {
		q.Set("status", strconv.Itoa(int(s.Tab)))
	}
	if s.Search != "" {
		q.Set("q", s.Search)
	}
	if s.PageNum > 1 {
		q.Set("page", strconv.Itoa(s.PageNum))
	}
	return s.factory.Authed().Get(ctx, api.MyOrders, q, &s.page)
}

func (s *OrdersScreen) Orders() []models.Order { return s.page.Results }

func (s *OrdersScreen) Total() int { return s.page.Count }

func (s *OrdersScreen) HasNext() bool { return s.page.HasNext() }

// SwitchTab resets to the first page of another status tab.
func (s *OrdersScreen) SwitchTab(ctx context.Context, tab models.OrderStatus) error {
	s.Tab, s.PageNum = tab, 1
	return s.Load(ctx)
}

func (s *OrdersScreen) NextPage(ctx context.Context) (bool, error) {
	if !s.page.HasNext() {
		return false, nil
	}
	s.PageNum++
	return true, s.Load(ctx)
}

// StatusOf resolves an order's wire label onto the closed status set.
func (s *OrdersScreen) StatusOf(o models.Order) models.OrderStatus {
	return s.statusIdx.Resolve(o.OrderStatusName)
}

// Actions lists what the customer may do with the order right now.
func (s *OrdersScreen) Actions(o models.Order) []models.StatusAction {
	return models.AvailableActions(models.RoleCustomer, s.StatusOf(o))
}

// RequestTransition asks the backend to move the order to target. Targets
// outside the customer's action table are refused locally.
func (s *OrdersScreen) RequestTransition(ctx context.Context, o models.Order, target models.OrderStatus) error {
	allowed := false
	for _, a := range s.Actions(o) {
		if a.Target == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("order %d cannot move to %q from %q", o.ID, target.Label(), o.OrderStatusName)
	}

	req := map[string]int{"order_status": int(target)}
	if err := s.factory.Authed().Patch(ctx, api.WithID(api.CustomerOrderState, o.ID), req, nil); err != nil {
		return err
	}
	s.log.Info("order transition requested",
		zap.Int("order_id", o.ID), zap.String("target", target.Label()))
	return s.Load(ctx)
}

// Order fetches one order with its lines for the detail view.
func (s *OrdersScreen) Order(ctx context.Context, id int) (*models.Order, error) {
	var o models.Order
	if err := s.factory.Authed().Get(ctx, api.WithID(api.OrderDetail, id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
