package models

import "time"

type Voucher struct {
	ID              int       `json:"id"`
	Code            string    `json:"code"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent"`
	MaxDiscount     *VND      `json:"max_discount"`
	MinOrderValue   VND       `json:"min_order_value"`
	ExpiryDate      time.Time `json:"expiry_date"`
	IsActive        bool      `json:"is_active"`
	MaxUses         *int      `json:"max_uses"`
	UsedCount       int       `json:"used_count"`
}

// UsableAt reports whether the voucher itself is still redeemable at the
// given instant. The minimum order value is checked separately against the
// basket, see checkout.Eligible.
func (v Voucher) UsableAt(now time.Time) bool {
	if !v.IsActive {
		return false
	}
	if !v.ExpiryDate.After(now) {
		return false
	}
	if v.MaxUses != nil && v.UsedCount >= *v.MaxUses {
		return false
	}
	return true
}
