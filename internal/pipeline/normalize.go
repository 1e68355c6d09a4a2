package pipeline

import "routier/internal/model"

// NormalizeGroup 把一个分组归一化成一条统一口径订单
// 形态在分组第一条记录上判定：
//   - 嵌套形态：表头字段取第一条记录，行项目来自其内嵌列表
//   - 平铺形态：组内每条记录是一个行项目，表头字段取第一行
//   - 未知形态：不产出订单，返回 false
//
// 归一化只做结构转换，不补全也不猜测任何尺寸
func NormalizeGroup(g Group) (*model.CanonicalOrder, bool) {
	if len(g.Records) == 0 {
		return nil, false
	}
	first := g.Records[0]

	switch ClassifyRecord(first) {
	case ShapeNested:
		return normalizeNested(g.OrderID, first), true
	case ShapeFlat:
		return normalizeFlat(g.OrderID, g.Records), true
	default:
		return nil, false
	}
}

// normalizeNested 嵌套形态：一个分组通常只有一条记录
func normalizeNested(orderID string, r RawRecord) *model.CanonicalOrder {
	order := newOrderHeader(orderID, r)
	order.Billing = parseBilling(r["billing"])
	order.ShippingLines = parseShippingLines(r["shipping_lines"])

	items, _ := r["line_items"].([]any)
	order.LineItems = make([]model.LineItem, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		order.LineItems = append(order.LineItems, model.LineItem{
			Name:     asString(obj["name"]),
			SKU:      asString(obj["sku"]),
			Quantity: asInt(obj["quantity"]),
			Price:    asString(obj["price"]),
			WidthCm:  asDim(obj["width_cm"]),
			HeightCm: asDim(obj["height_cm"]),
			LengthCm: asDim(obj["length_cm"]),
		})
	}
	return order
}

// normalizeFlat 平铺形态：每行一个行项目，账单字段带 billing_ 前缀
func normalizeFlat(orderID string, records []RawRecord) *model.CanonicalOrder {
	first := records[0]
	order := newOrderHeader(orderID, first)
	order.Billing = model.Billing{
		FirstName: asString(first["billing_first_name"]),
		LastName:  asString(first["billing_last_name"]),
		Address1:  asString(first["billing_address_1"]),
		City:      asString(first["billing_city"]),
		Email:     asString(first["billing_email"]),
		Phone:     asString(first["billing_phone"]),
	}
	order.ShippingLines = []model.ShippingLine{
		{MethodTitle: asString(first["shipping_method_title"])},
	}

	order.LineItems = make([]model.LineItem, 0, len(records))
	for _, r := range records {
		order.LineItems = append(order.LineItems, model.LineItem{
			Name:     asString(r["line_item_name"]),
			SKU:      asString(r["line_item_sku"]),
			Quantity: asInt(r["line_item_quantity"]),
			Price:    asString(r["line_item_price"]),
		})
	}
	return order
}

func newOrderHeader(orderID string, r RawRecord) *model.CanonicalOrder {
	return &model.CanonicalOrder{
		ID:                 orderID,
		Number:             asString(r["number"]),
		Status:             asString(r["status"]),
		DateCreated:        asString(r["date_created"]),
		ShippingDate:       asString(r["shipping_date"]),
		Total:              asString(r["total"]),
		ShippingTotal:      asString(r["shipping_total"]),
		PaymentMethodTitle: asString(r["payment_method_title"]),
	}
}

func parseBilling(v any) model.Billing {
	obj, ok := v.(map[string]any)
	if !ok {
		return model.Billing{}
	}
	return model.Billing{
		FirstName: asString(obj["first_name"]),
		LastName:  asString(obj["last_name"]),
		Address1:  asString(obj["address_1"]),
		City:      asString(obj["city"]),
		Email:     asString(obj["email"]),
		Phone:     asString(obj["phone"]),
	}
}

func parseShippingLines(v any) []model.ShippingLine {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	lines := make([]model.ShippingLine, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		lines = append(lines, model.ShippingLine{MethodTitle: asString(obj["method_title"])})
	}
	return lines
}
