package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// VND is a money amount in Vietnamese dong. The backend serializes decimal
// columns as JSON strings ("120000.00") while computed fields arrive as plain
// numbers, so unmarshalling accepts both shapes.
type VND float64

func (v *VND) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid money value %s: %w", string(data), err)
	}
	*v = VND(f)
	return nil
}

func (v VND) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(v))
}

// Format renders the amount the way the storefront displays prices,
// e.g. 1234567 -> "1.234.567 VNĐ".
func (v VND) Format() string {
	n := int64(v)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + " VNĐ"
}
