package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVNDUnmarshal(t *testing.T) {
	var doc struct {
		AsString VND `json:"s"`
		AsNumber VND `json:"n"`
		Null     VND `json:"z"`
	}
	err := json.Unmarshal([]byte(`{"s": "120000.00", "n": 35000, "z": null}`), &doc)
	require.NoError(t, err)

	assert.Equal(t, VND(120000), doc.AsString)
	assert.Equal(t, VND(35000), doc.AsNumber)
	assert.Equal(t, VND(0), doc.Null)

	var v VND
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
}

func TestVNDFormat(t *testing.T) {
	assert.Equal(t, "0 VNĐ", VND(0).Format())
	assert.Equal(t, "999 VNĐ", VND(999).Format())
	assert.Equal(t, "1.000 VNĐ", VND(1000).Format())
	assert.Equal(t, "1.234.567 VNĐ", VND(1234567).Format())
	assert.Equal(t, "-20.000 VNĐ", VND(-20000).Format())
}

func TestOrderDerivedTotals(t *testing.T) {
	o := Order{
		ShipFee:   20000,
		TotalCost: 205000,
		Items: []OrderLine{
			{Product: Product{Price: 100000}, Quantity: 2},
		},
	}
	assert.Equal(t, VND(200000), o.Subtotal())
	assert.Equal(t, VND(15000), o.Discount())

	// Unit price at purchase wins over the current listing price.
	o.Items[0].UnitPrice = 90000
	assert.Equal(t, VND(180000), o.Subtotal())

	// A total above subtotal+fee never yields a negative discount.
	o.TotalCost = 500000
	assert.Equal(t, VND(0), o.Discount())
}
