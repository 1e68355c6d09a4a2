package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// OrdersSheetParser 订单表格解析器
// 把上传的 Excel 第一张工作表转换为平铺键值行，
// 产出的行数组与粘贴 JSON 的平铺形态完全同构，直接进入归一化管线
type OrdersSheetParser struct {
	fileID string
}

// NewOrdersSheetParser 创建解析器
func NewOrdersSheetParser() *OrdersSheetParser {
	return &OrdersSheetParser{
		fileID: uuid.New().String(),
	}
}

// Parse 解析 Excel 内容
// 第一行作为列名，其后每行转成一个键值对象；整行为空的行跳过
func (p *OrdersSheetParser) Parse(reader io.Reader) (*OrdersSheet, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheetName := sheets[0]

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, errors.New("sheet has no data rows")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = NormalizeHeader(h)
	}

	result := &OrdersSheet{
		FileID:    p.fileID,
		SheetName: sheetName,
		Headers:   headers,
		Rows:      make([]map[string]any, 0, len(rows)-1),
	}

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		record := make(map[string]any, len(headers))
		empty := true
		for colIdx, header := range headers {
			if header == "" {
				continue
			}
			var value any
			if colIdx < len(rows[rowIdx]) {
				value = ParseCellValue(rows[rowIdx][colIdx])
			}
			if value != nil {
				empty = false
			}
			record[header] = value
		}
		if empty {
			continue
		}
		result.Rows = append(result.Rows, record)
	}

	result.RowCount = len(result.Rows)
	return result, nil
}
