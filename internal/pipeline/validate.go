package pipeline

import "routier/internal/model"

// UnresolvedProducts 扫描补全之后的订单集合，
// 返回仍缺少任一尺寸的产品名去重列表（按首次出现顺序）。
// 结果非空时请求不得继续发往优化服务
func UnresolvedProducts(orders []*model.CanonicalOrder) []string {
	var names []string
	seen := make(map[string]bool)

	for _, o := range orders {
		for _, li := range o.LineItems {
			if li.Name == "" {
				continue
			}
			if hasAllDimensions(li) {
				continue
			}
			key := foldName(li.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, li.Name)
		}
	}
	return names
}

func hasAllDimensions(li model.LineItem) bool {
	return dimPresent(li.WidthCm) && dimPresent(li.HeightCm) && dimPresent(li.LengthCm)
}

// dimPresent 零尺寸与缺失同样视为未补全
func dimPresent(v *float64) bool {
	return v != nil && *v > 0
}
