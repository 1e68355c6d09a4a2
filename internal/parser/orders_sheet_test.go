package parser

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestOrdersSheetParser_FlatRows(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"id", "number", "line_item_name", "line_item_quantity", "billing_city"},
		{10115, "10115", "TRK 251", 2, "Oran"},
		{10115, "10115", "VMS 125", 1, "Oran"},
	})

	sheet, err := NewOrdersSheetParser().Parse(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if sheet.FileID == "" {
		t.Fatalf("expected generated file id")
	}
	if sheet.RowCount != 2 || len(sheet.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", sheet.RowCount)
	}

	first := sheet.Rows[0]
	if id, ok := first["id"].(float64); !ok || id != 10115 {
		t.Fatalf("numeric cell must decode as float64: %#v", first["id"])
	}
	if name, ok := first["line_item_name"].(string); !ok || name != "TRK 251" {
		t.Fatalf("unexpected line_item_name: %#v", first["line_item_name"])
	}
	if qty, ok := first["line_item_quantity"].(float64); !ok || qty != 2 {
		t.Fatalf("unexpected quantity: %#v", first["line_item_quantity"])
	}
}

func TestOrdersSheetParser_SkipsEmptyRows(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"id", "line_item_name"},
		{1, "A"},
		{nil, nil},
		{2, "B"},
	})

	sheet, err := NewOrdersSheetParser().Parse(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sheet.RowCount != 2 {
		t.Fatalf("empty row must be skipped, got %d rows", sheet.RowCount)
	}
}

func TestOrdersSheetParser_NoDataRows(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{{"id", "line_item_name"}})
	if _, err := NewOrdersSheetParser().Parse(buf); err == nil {
		t.Fatalf("expected error for header-only sheet")
	}
}

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	if got := NormalizeHeader(" line_item\n_name \t"); got != "line_item _name" {
		t.Fatalf("unexpected normalized header: %q", got)
	}
	if got := NormalizeHeader("billing_city"); got != "billing_city" {
		t.Fatalf("plain header must pass through: %q", got)
	}
}

func TestParseCellValue(t *testing.T) {
	t.Parallel()

	if v := ParseCellValue(""); v != nil {
		t.Fatalf("empty cell must be nil, got %#v", v)
	}
	if v, ok := ParseCellValue("1,250.5").(float64); !ok || v != 1250.5 {
		t.Fatalf("thousands separator: %#v", v)
	}
	if v, ok := ParseCellValue("TRK 251").(string); !ok || v != "TRK 251" {
		t.Fatalf("text cell: %#v", v)
	}
}
