package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// canonicalID 把任意 JSON 值转成规范的订单号字符串
// 数字 42 和字符串 "42" 必须落到同一个分组键
func canonicalID(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return fmt.Sprint(t), true
	}
}

// asString 宽松转字符串；数字不带多余的小数零
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// asInt 宽松转整数（表格单元格里的数量常以浮点形式出现）
func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		i, _ := strconv.Atoi(s)
		return i
	default:
		return 0
	}
}

// asDim 宽松转尺寸；缺失、非数字或非正值都视为缺失
func asDim(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if f <= 0 {
		return nil
	}
	return &f
}
