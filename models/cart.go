package models

// CartLine is one product entry in the cart as the backend returns it.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) LineTotal() VND {
	return l.Product.Price * VND(l.Quantity)
}

// StoreCartGroup is the cart grouped by owning store, newest activity first.
type StoreCartGroup struct {
	Store    Store      `json:"store"`
	Products []CartLine `json:"products"`
}

// Line returns the cart line for productID, or nil when the store group
// does not carry that product.
func (g *StoreCartGroup) Line(productID int) *CartLine {
	for i := range g.Products {
		if g.Products[i].Product.ID == productID {
			return &g.Products[i]
		}
	}
	return nil
}
