package pipeline

import (
	"encoding/json"
	"testing"
)

func decodeRecords(t *testing.T, text string) []RawRecord {
	t.Helper()
	records, err := ParseOrders(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return records
}

func TestNormalizeGroup_Nested(t *testing.T) {
	t.Parallel()

	records := decodeRecords(t, `[{
		"id": 881,
		"number": "881",
		"status": "processing",
		"date_created": "2026-08-01T10:00:00",
		"shipping_date": "2026-08-10",
		"total": "250000.00",
		"shipping_total": "3000.00",
		"payment_method_title": "CCP",
		"billing": {"first_name": "Amine", "last_name": "B", "address_1": "Rue 5", "city": "Alger", "email": "a@b.dz", "phone": "0550"},
		"line_items": [
			{"name": "TRK 251", "sku": "TRK251", "quantity": 2, "price": "120000", "width_cm": 70},
			{"name": "VMS 125", "quantity": 1}
		],
		"shipping_lines": [{"method_title": "Livraison express"}]
	}]`)

	groups, _ := GroupByOrder(records)
	order, ok := NormalizeGroup(groups[0])
	if !ok {
		t.Fatalf("expected usable group")
	}

	if order.ID != "881" || order.Number != "881" || order.Status != "processing" {
		t.Fatalf("header mismatch: %+v", order)
	}
	if order.Total != "250000.00" || order.PaymentMethodTitle != "CCP" {
		t.Fatalf("header mismatch: %+v", order)
	}
	if order.Billing.City != "Alger" || order.Billing.Phone != "0550" {
		t.Fatalf("billing mismatch: %+v", order.Billing)
	}
	if len(order.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.LineItems))
	}
	first := order.LineItems[0]
	if first.Name != "TRK 251" || first.Quantity != 2 || first.Price != "120000" {
		t.Fatalf("line item mismatch: %+v", first)
	}
	if first.WidthCm == nil || *first.WidthCm != 70 {
		t.Fatalf("source-supplied width should survive normalization: %+v", first)
	}
	if first.HeightCm != nil {
		t.Fatalf("missing height must stay missing, got %v", *first.HeightCm)
	}
	if len(order.ShippingLines) != 1 || order.ShippingLines[0].MethodTitle != "Livraison express" {
		t.Fatalf("shipping lines mismatch: %+v", order.ShippingLines)
	}
}

func TestNormalizeGroup_FlatRowsCollapse(t *testing.T) {
	t.Parallel()

	// 三行同一订单号，三个不同产品，应收敛成一条订单、三个行项目，保持行顺序
	records := decodeRecords(t, `[
		{"id": 10115, "number": "10115", "status": "processing", "total": 99000,
		 "billing_first_name": "Karim", "billing_last_name": "Z", "billing_address_1": "Cite 8", "billing_city": "Oran", "billing_email": "k@z.dz", "billing_phone": "0661",
		 "shipping_method_title": "Standard",
		 "line_item_name": "TRK 251", "line_item_sku": "TRK251", "line_item_quantity": 2, "line_item_price": 120000},
		{"id": 10115, "number": "10115", "status": "processing",
		 "billing_first_name": "ignored", "shipping_method_title": "ignored",
		 "line_item_name": "VMS 125", "line_item_quantity": 1},
		{"id": 10115,
		 "line_item_name": "C90", "line_item_quantity": 3}
	]`)

	groups, _ := GroupByOrder(records)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	order, ok := NormalizeGroup(groups[0])
	if !ok {
		t.Fatalf("expected usable group")
	}

	if order.ID != "10115" {
		t.Fatalf("unexpected id: %s", order.ID)
	}
	// 表头字段以第一行为准
	if order.Billing.FirstName != "Karim" || order.Billing.City != "Oran" {
		t.Fatalf("billing must come from first row: %+v", order.Billing)
	}
	if order.Total != "99000" {
		t.Fatalf("total must come from first row: %s", order.Total)
	}
	if len(order.ShippingLines) != 1 || order.ShippingLines[0].MethodTitle != "Standard" {
		t.Fatalf("shipping method mismatch: %+v", order.ShippingLines)
	}

	if len(order.LineItems) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(order.LineItems))
	}
	wantNames := []string{"TRK 251", "VMS 125", "C90"}
	for i, want := range wantNames {
		if order.LineItems[i].Name != want {
			t.Fatalf("line item %d: want %s, got %s", i, want, order.LineItems[i].Name)
		}
	}
	if order.LineItems[0].Quantity != 2 || order.LineItems[2].Quantity != 3 {
		t.Fatalf("quantity mismatch: %+v", order.LineItems)
	}
}

func TestNormalizeGroup_UnknownShapeUnusable(t *testing.T) {
	t.Parallel()

	group := Group{OrderID: "5", Records: []RawRecord{{"id": float64(5), "status": "draft"}}}
	if _, ok := NormalizeGroup(group); ok {
		t.Fatalf("unknown shape must not yield an order")
	}
}

func TestNormalizeGroup_OrderSerializesWithWireFieldNames(t *testing.T) {
	t.Parallel()

	records := decodeRecords(t, `[{"id": 1, "line_items": [{"name": "X", "quantity": 1}], "billing": {}, "shipping_lines": []}]`)
	groups, _ := GroupByOrder(records)
	order, _ := NormalizeGroup(groups[0])

	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "billing", "line_items", "shipping_lines"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing wire field %q in %s", key, data)
		}
	}
}
