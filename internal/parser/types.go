package parser

// OrdersSheet 转换结果：第一张工作表的平铺行
// 每行一个行项目，列名来自表头行，空单元格为 nil
type OrdersSheet struct {
	FileID    string           `json:"fileId"`
	SheetName string           `json:"sheetName"`
	Headers   []string         `json:"headers"`
	RowCount  int              `json:"rowCount"`
	Rows      []map[string]any `json:"rows"`
}
