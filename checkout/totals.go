package checkout

import (
	"time"

	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// Subtotal sums price x quantity over the given cart lines.
func Subtotal(lines []models.CartLine) models.VND {
	var sum models.VND
	for _, l := range lines {
		sum += l.LineTotal()
	}
	return sum
}

// Discount computes the voucher reduction for a basket subtotal: the
// percentage cut, capped by the voucher's maximum, never more than the
// subtotal itself. A nil voucher discounts nothing.
func Discount(subtotal models.VND, v *models.Voucher) models.VND {
	if v == nil {
		return 0
	}
	d := subtotal * models.VND(v.DiscountPercent) / 100
	if v.MaxDiscount != nil && d > *v.MaxDiscount {
		d = *v.MaxDiscount
	}
	if d > subtotal {
		d = subtotal
	}
	return d
}

// Total is what the customer pays.
func Total(subtotal, discount, shipFee models.VND) models.VND {
	return subtotal - discount + shipFee
}

// Eligible filters the vouchers redeemable for the given subtotal at the
// given instant. Order is preserved.
func Eligible(vouchers []models.Voucher, subtotal models.VND, now time.Time) []models.Voucher {
	var out []models.Voucher
	for _, v := range vouchers {
		if v.UsableAt(now) && subtotal >= v.MinOrderValue {
			out = append(out, v)
		}
	}
	return out
}
