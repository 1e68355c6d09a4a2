package model

import "encoding/json"

// Feedback 用户对一次优化结果的评价
// categories/context 原样存为 JSON，不在服务端解析
type Feedback struct {
	ID         string          `json:"id"`
	Rating     int             `json:"rating"`
	Comment    string          `json:"comment,omitempty"`
	Categories json.RawMessage `json:"categories,omitempty"`
	Context    json.RawMessage `json:"context,omitempty"`
	CreatedAt  string          `json:"created_at,omitempty"`
}
