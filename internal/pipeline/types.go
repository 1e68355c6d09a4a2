package pipeline

// RawRecord 原始记录
// 既可能是一个完整的嵌套订单对象，也可能是表格导出的单个行项目行
type RawRecord map[string]any

// Shape 记录形态
type Shape int

const (
	// ShapeNested 嵌套形态：记录自带 line_items 列表
	ShapeNested Shape = iota
	// ShapeFlat 平铺形态：每条记录内联一个行项目（line_item_* 字段）
	ShapeFlat
	// ShapeUnknown 两种已知形态都不匹配
	ShapeUnknown
)

// String 形态名称
func (s Shape) String() string {
	switch s {
	case ShapeNested:
		return "nested"
	case ShapeFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// Group 同一订单号的原始记录组，Records 保持输入顺序
type Group struct {
	OrderID string
	Records []RawRecord
}

// SkippedRecord 被跳过的记录（缺少订单号，无法分组）
type SkippedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Report 一次管线运行的数据质量报告
type Report struct {
	TotalRecords   int             `json:"totalRecords"`
	OrderCount     int             `json:"orderCount"`
	Skipped        []SkippedRecord `json:"skipped,omitempty"`
	UnusableGroups []string        `json:"unusableGroups,omitempty"`
	Unresolved     []string        `json:"unresolved,omitempty"`
}
