package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurzhas/procurement-api/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the order book as a two-sheet workbook: a summary sheet
// with totals and per-status counts, and an orders sheet with one row per
// order.
func (g *Generator) Generate(book model.OrderBook) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, book); err != nil {
		return nil, err
	}

	ordersSheet := "Orders"
	if _, err := file.NewSheet(ordersSheet); err != nil {
		return nil, err
	}
	if err := g.writeOrders(file, ordersSheet, book); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, book model.OrderBook) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	totalValue := 0.0
	statusCounts := make(map[model.OrderStatus]int)
	for _, order := range book.Orders {
		totalValue += order.TotalAmount
		statusCounts[order.Status]++
	}

	set("A1", "Generated at")
	set("B1", formatTime(book.GeneratedAt))
	set("A2", "Orders")
	set("B2", len(book.Orders))
	set("A3", "Total value, $")
	set("B3", totalValue)

	tableRow := 5
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Orders")
	for i, status := range model.OrderStatuses() {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), statusCounts[status])
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 22)
	return nil
}

func (g *Generator) writeOrders(file *excelize.File, sheet string, book model.OrderBook) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Order ID",
		"Supplier",
		"Status",
		"Created",
		"Updated",
		"Items",
		"Total, $",
		"Payment terms",
		"Notes",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, order := range book.Orders {
		row := i + 2
		items := 0
		for _, p := range order.Products {
			items += p.Quantity
		}
		set(fmt.Sprintf("A%d", row), order.ID)
		set(fmt.Sprintf("B%d", row), order.SupplierName)
		set(fmt.Sprintf("C%d", row), string(order.Status))
		set(fmt.Sprintf("D%d", row), formatTime(order.CreatedAt))
		set(fmt.Sprintf("E%d", row), formatTime(order.UpdatedAt))
		set(fmt.Sprintf("F%d", row), items)
		set(fmt.Sprintf("G%d", row), order.TotalAmount)
		set(fmt.Sprintf("H%d", row), order.PaymentTerms)
		set(fmt.Sprintf("I%d", row), order.Notes)
	}

	_ = file.SetColWidth(sheet, "A", "A", 38)
	_ = file.SetColWidth(sheet, "B", "B", 28)
	_ = file.SetColWidth(sheet, "C", "E", 18)
	_ = file.SetColWidth(sheet, "F", "H", 14)
	_ = file.SetColWidth(sheet, "I", "I", 40)
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}
