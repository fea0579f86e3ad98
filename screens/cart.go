package screens

import (
	"context"

	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/checkout"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// Backend messages the cart flow reacts to specifically.
const (
	MsgQuantityExceedsStock = "Số lượng vượt quá giới hạn sẵn có."
	MsgProductGone          = "Sản phẩm không tồn tại."
	MsgNotInCart            = "Sản phẩm chưa có trong giỏ hàng."
)

// StockConflict reports whether the call failed because the cart no longer
// matches what the store has. The caller re-fetches the cart on it.
func StockConflict(err error) bool {
	switch api.BusinessMessage(err) {
	case MsgQuantityExceedsStock, MsgProductGone, MsgNotInCart:
		return true
	}
	return false
}

// CartScreen holds the grouped cart and the per-line selection that feeds
// checkout. Mutations go to the backend first, then the local copy is
// patched the same way.
type CartScreen struct {
	factory *api.Factory
	log     *zap.Logger

	groups   []models.StoreCartGroup
	selected map[int]bool // product ids
}

func NewCart(f *api.Factory, log *zap.Logger) *CartScreen {
	return &CartScreen{factory: f, log: log, selected: make(map[int]bool)}
}

// Load fetches the cart grouped by store, newest activity first, and prunes
// the selection down to lines that still exist.
func (s *CartScreen) Load(ctx context.Context) error {
	var groups []models.StoreCartGroup
	if err := s.factory.Authed().Get(ctx, api.Cart, nil, &groups); err != nil {
		return err
	}
	s.groups = groups

	alive := make(map[int]bool)
	for _, g := range groups {
		for _, l := range g.Products {
			alive[l.Product.ID] = true
		}
	}
	for id := range s.selected {
		if !alive[id] {
			delete(s.selected, id)
		}
	}
	return nil
}

func (s *CartScreen) Groups() []models.StoreCartGroup { return s.groups }

func (s *CartScreen) Empty() bool { return len(s.groups) == 0 }

func (s *CartScreen) IsSelected(productID int) bool { return s.selected[productID] }

func (s *CartScreen) ToggleItem(productID int, on bool) {
	if on {
		s.selected[productID] = true
	} else {
		delete(s.selected, productID)
	}
}

// SelectStore selects or clears every line of one store group.
func (s *CartScreen) SelectStore(storeID int, on bool) {
	for _, g := range s.groups {
		if g.Store.ID != storeID {
			continue
		}
		for _, l := range g.Products {
			s.ToggleItem(l.Product.ID, on)
		}
	}
}

func (s *CartScreen) SelectAll(on bool) {
	for _, g := range s.groups {
		s.SelectStore(g.Store.ID, on)
	}
}

// Selected returns the chosen lines in display order.
func (s *CartScreen) Selected() []models.CartLine {
	var out []models.CartLine
	for _, g := range s.groups {
		for _, l := range g.Products {
			if s.selected[l.Product.ID] {
				out = append(out, l)
			}
		}
	}
	return out
}

// SelectedByStore splits the selection into per-store baskets, since an
// order can only cover one store.
func (s *CartScreen) SelectedByStore() []models.StoreCartGroup {
	var out []models.StoreCartGroup
	for _, g := range s.groups {
		var lines []models.CartLine
		for _, l := range g.Products {
			if s.selected[l.Product.ID] {
				lines = append(lines, l)
			}
		}
		if len(lines) > 0 {
			out = append(out, models.StoreCartGroup{Store: g.Store, Products: lines})
		}
	}
	return out
}

// SelectedSubtotal is the running total shown under the cart.
func (s *CartScreen) SelectedSubtotal() models.VND {
	return checkout.Subtotal(s.Selected())
}

// Add puts quantity more of a product into the cart.
func (s *CartScreen) Add(ctx context.Context, productID, quantity int) error {
	req := map[string]int{"product_id": productID, "quantity": quantity}
	if err := s.factory.Authed().Post(ctx, api.CartAdd, req, nil); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Increase bumps a line by one.
func (s *CartScreen) Increase(ctx context.Context, productID int) error {
	return s.adjust(ctx, productID, 1)
}

// Decrease lowers a line by one; at quantity one the line is removed
// instead, and an emptied store group disappears with it.
func (s *CartScreen) Decrease(ctx context.Context, productID int) error {
	if l := s.line(productID); l != nil && l.Quantity <= 1 {
		return s.Remove(ctx, productID)
	}
	return s.adjust(ctx, productID, -1)
}

func (s *CartScreen) adjust(ctx context.Context, productID, delta int) error {
	req := map[string]int{"product_id": productID, "quantity": delta}
	if err := s.factory.Authed().Patch(ctx, api.CartQuantity, req, nil); err != nil {
		return err
	}
	if l := s.line(productID); l != nil {
		l.Quantity += delta
	}
	return nil
}

// Remove deletes the given lines from the cart.
func (s *CartScreen) Remove(ctx context.Context, productIDs ...int) error {
	req := map[string][]int{"product_ids": productIDs}
	if err := s.factory.Authed().Delete(ctx, api.CartRemove, req); err != nil {
		return err
	}
	s.drop(productIDs)
	return nil
}

// RemoveSelected deletes everything currently ticked.
func (s *CartScreen) RemoveSelected(ctx context.Context) error {
	ids := make([]int, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}
	return s.Remove(ctx, ids...)
}

func (s *CartScreen) line(productID int) *models.CartLine {
	for i := range s.groups {
		if l := s.groups[i].Line(productID); l != nil {
			return l
		}
	}
	return nil
}

func (s *CartScreen) drop(productIDs []int) {
	gone := make(map[int]bool, len(productIDs))
	for _, id := range productIDs {
		gone[id] = true
		delete(s.selected, id)
	}
	var groups []models.StoreCartGroup
	for _, g := range s.groups {
		var lines []models.CartLine
		for _, l := range g.Products {
			if !gone[l.Product.ID] {
				lines = append(lines, l)
			}
		}
		if len(lines) > 0 {
			g.Products = lines
			groups = append(groups, g)
		}
	}
	s.groups = groups
}
