package pipeline

// ClassifyRecord 识别记录形态
// 在分组的第一条记录上判定一次，归一化按判定结果分支；
// 不做任何逐字段的兜底猜测
func ClassifyRecord(r RawRecord) Shape {
	if _, ok := r["line_items"].([]any); ok {
		return ShapeNested
	}
	if asString(r["line_item_name"]) != "" {
		return ShapeFlat
	}
	return ShapeUnknown
}
