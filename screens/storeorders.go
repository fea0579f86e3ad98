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

// StoreOrdersScreen is the seller side of order handling: incoming orders
// by status, the store's transition actions, per-status counts and an
// Excel export of the current view.
type StoreOrdersScreen struct {
	factory *api.Factory
	log     *zap.Logger

	statusIdx *models.StatusIndex

	Tab     models.OrderStatus
	PageNum int

	page models.Page[models.Order]
}

func NewStoreOrders(f *api.Factory, log *zap.Logger) *StoreOrdersScreen {
	return &StoreOrdersScreen{factory: f, log: log, Tab: models.StatusPending, PageNum: 1}
}

func (s *StoreOrdersScreen) LoadStatuses(ctx context.Context) error {
	var records []models.OrderStatusRecord
	if err := s.factory.Public().Get(ctx, api.OrderStatuses, nil, &records); err != nil {
		return err
	}
	s.statusIdx = models.NewStatusIndex(records)
	return nil
}

func (s *StoreOrdersScreen) Load(ctx context.Context) error {
	q := url.Values{}
	if s.Tab != models.StatusUnknown {
		q.Set("status", strconv.Itoa(int(s.Tab)))
	}
	if s.PageNum > 1 {
		q.Set("page", strconv.Itoa(s.PageNum))
	}
	return s.factory.Authed().Get(ctx, api.StoreOrders, q, &s.page)
}

func (s *StoreOrdersScreen) Orders() []models.Order { return s.page.Results }

func (s *StoreOrdersScreen) Total() int { return s.page.Count }

func (s *StoreOrdersScreen) SwitchTab(ctx context.Context, tab models.OrderStatus) error {
	s.Tab, s.PageNum = tab, 1
	return s.Load(ctx)
}

func (s *StoreOrdersScreen) NextPage(ctx context.Context) (bool, error) {
	if !s.page.HasNext() {
		return false, nil
	}
	s.PageNum++
	return true, s.Load(ctx)
}

func (s *StoreOrdersScreen) StatusOf(o models.Order) models.OrderStatus {
	return s.statusIdx.Resolve(o.OrderStatusName)
}

// Actions lists the store's transitions for the order.
func (s *StoreOrdersScreen) Actions(o models.Order) []models.StatusAction {
	return models.AvailableActions(models.RoleStore, s.StatusOf(o))
}

// UpdateStatus moves an order along the store's side of the lifecycle.
func (s *StoreOrdersScreen) UpdateStatus(ctx context.Context, o models.Order, target models.OrderStatus) error {
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

	req := map[string]int{"order_id": o.ID, "order_status": int(target)}
	if err := s.factory.Authed().Patch(ctx, api.StoreOrderState, req, nil); err != nil {
		return err
	}
	s.log.Info("store order status updated",
		zap.Int("order_id", o.ID), zap.String("target", target.Label()))
	return s.Load(ctx)
}

// Stats fetches the per-status order counts for the dashboard header.
func (s *StoreOrdersScreen) Stats(ctx context.Context) ([]models.StoreOrderStat, error) {
	var stats []models.StoreOrderStat
	err := s.factory.Authed().Get(ctx, api.StoreOrderStats, nil, &stats)
	return stats, err
}
