package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeHeader 规范化表头列名，去除换行和多余空白
func NormalizeHeader(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", "")
	name = strings.ReplaceAll(name, "\t", " ")
	name = spaceRe.ReplaceAllString(name, " ")
	return name
}

// ParseCellValue 把单元格文本转成 JSON 兼容值
// 数字文本转 float64，与前端 JSON 解析出的数字保持同一类型；
// 空单元格转 nil
func ParseCellValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	numeric := strings.ReplaceAll(s, ",", "")
	if f, err := strconv.ParseFloat(numeric, 64); err == nil {
		return f
	}
	return s
}
