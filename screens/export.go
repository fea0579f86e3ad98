package screens

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// ExportOrdersToExcel writes the given orders to an .xlsx file at path,
// one row per order with the lines flattened into a single cell.
func ExportOrdersToExcel(path string, orders []models.Order, idx func(models.Order) models.OrderStatus) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"OrderCode", "CreatedDate", "Customer", "Phone", "Address",
		"Items", "Subtotal", "ShipFee", "Discount", "Total",
		"PaymentMethod", "Paid", "Status",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()

		row.AddCell().SetValue(o.OrderCode)
		row.AddCell().SetValue(o.CreatedDate.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(o.DeliveryInfo.Name)
		row.AddCell().SetValue(o.DeliveryInfo.PhoneNumber)
		row.AddCell().SetValue(o.DeliveryInfo.Address)

		var items []string
		for _, it := range o.Items {
			items = append(items, fmt.Sprintf("%s x%d", it.Product.Name, it.Quantity))
		}
		row.AddCell().SetValue(strings.Join(items, "; "))

		row.AddCell().SetValue(float64(o.Subtotal()))
		row.AddCell().SetValue(float64(o.ShipFee))
		row.AddCell().SetValue(float64(o.Discount()))
		row.AddCell().SetValue(float64(o.TotalCost))

		if o.PaymentMethod == models.PaymentOnline {
			row.AddCell().SetValue("online")
		} else {
			row.AddCell().SetValue("cod")
		}
		row.AddCell().SetValue(o.IsPaid)
		row.AddCell().SetValue(idx(o).Label())
	}

	if err := file.Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
