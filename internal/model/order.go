package model

// Billing 订单账单信息（客户收货联系方式）
type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShippingLine 配送方式
type ShippingLine struct {
	MethodTitle string `json:"method_title"`
}

// LineItem 订单行项目
// 三个尺寸字段可能由数据源直接提供，否则需要通过产品目录补全；
// nil 表示缺失
type LineItem struct {
	Name     string   `json:"name"`
	SKU      string   `json:"sku,omitempty"`
	Quantity int      `json:"quantity"`
	Price    string   `json:"price,omitempty"`
	WidthCm  *float64 `json:"width_cm,omitempty"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	LengthCm *float64 `json:"length_cm,omitempty"`
}

// CanonicalOrder 统一口径订单
// 无论输入是嵌套 JSON 还是平铺表格行，归一化之后都只有这一种表示
type CanonicalOrder struct {
	ID                 string         `json:"id"`
	Number             string         `json:"number,omitempty"`
	Status             string         `json:"status,omitempty"`
	DateCreated        string         `json:"date_created,omitempty"`
	ShippingDate       string         `json:"shipping_date,omitempty"`
	Total              string         `json:"total,omitempty"`
	ShippingTotal      string         `json:"shipping_total,omitempty"`
	PaymentMethodTitle string         `json:"payment_method_title,omitempty"`
	Billing            Billing        `json:"billing"`
	LineItems          []LineItem     `json:"line_items"`
	ShippingLines      []ShippingLine `json:"shipping_lines"`
}

// Clone 深拷贝订单（尺寸补全不改动原订单）
func (o *CanonicalOrder) Clone() *CanonicalOrder {
	out := *o
	out.LineItems = make([]LineItem, len(o.LineItems))
	for i, li := range o.LineItems {
		item := li
		item.WidthCm = cloneFloat(li.WidthCm)
		item.HeightCm = cloneFloat(li.HeightCm)
		item.LengthCm = cloneFloat(li.LengthCm)
		out.LineItems[i] = item
	}
	out.ShippingLines = append([]ShippingLine(nil), o.ShippingLines...)
	return &out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
