package pipeline

import (
	"fmt"

	"routier/internal/model"
)

// Result 一次管线运行的产物
// 补全校验未通过时 Payload 为 nil，未匹配的产品名记录在 Report.Unresolved
type Result struct {
	Payload *model.OptimizeRequest
	Orders  []*model.CanonicalOrder
	Report  Report
}

// Blocked 是否被补全校验拦截
func (r *Result) Blocked() bool {
	return len(r.Report.Unresolved) > 0
}

// Run 执行完整管线：解析 → 分组 → 归一化 → 尺寸补全 → 校验 → 组装请求
// 管线对快照和输入都是纯函数：不修改目录数据，不保留任何跨请求状态。
// 返回 error 的情况只有终止性错误（JSON 非法、目录重名）
func Run(snap model.Snapshot, ordersText string, selected []model.Vehicle, allowSplitting bool, defaultPct float64) (*Result, error) {
	records, err := ParseOrders(ordersText)
	if err != nil {
		return nil, err
	}

	index, err := NewProductIndex(snap.Products)
	if err != nil {
		return nil, err
	}

	groups, skipped := GroupByOrder(records)

	result := &Result{
		Report: Report{
			TotalRecords: len(records),
			Skipped:      skipped,
		},
	}

	for _, g := range groups {
		order, ok := NormalizeGroup(g)
		if !ok {
			result.Report.UnusableGroups = append(result.Report.UnusableGroups, g.OrderID)
			continue
		}
		result.Orders = append(result.Orders, index.Resolve(order))
	}
	result.Report.OrderCount = len(result.Orders)

	if unresolved := UnresolvedProducts(result.Orders); len(unresolved) > 0 {
		result.Report.Unresolved = unresolved
		return result, nil
	}

	result.Payload = &model.OptimizeRequest{
		Orders:              result.Orders,
		Fleet:               BuildFleet(selected, defaultPct),
		AllowOrderSplitting: allowSplitting,
	}
	return result, nil
}

// UnresolvedMessage 拼装拦截提示（供接口层直接展示）
func UnresolvedMessage(names []string) string {
	msg := "以下产品未在目录中登记或缺少尺寸: "
	for i, n := range names {
		if i > 0 {
			msg += ", "
		}
		msg += n
	}
	return fmt.Sprintf("%s；请先在产品目录中补全后重试", msg)
}
