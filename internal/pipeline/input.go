package pipeline

import (
	"encoding/json"
	"fmt"
)

// ParseOrders 把原始文本解析为原始记录序列
// 顶层是数组时直接使用；是对象且带 orders 数组字段时取该数组；
// 否则把单个对象当作一条订单。JSON 本身非法是整个请求的终止错误
func ParseOrders(text string) ([]RawRecord, error) {
	var top any
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return nil, fmt.Errorf("orders text is not valid JSON: %w", err)
	}

	switch v := top.(type) {
	case []any:
		return toRecords(v)
	case map[string]any:
		if orders, ok := v["orders"].([]any); ok {
			return toRecords(orders)
		}
		return []RawRecord{RawRecord(v)}, nil
	default:
		return nil, fmt.Errorf("unexpected top-level JSON value %T", top)
	}
}

func toRecords(items []any) ([]RawRecord, error) {
	records := make([]RawRecord, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
		records = append(records, RawRecord(obj))
	}
	return records, nil
}
