package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"routier/internal/model"
)

// FeedbackRequest 反馈提交请求
type FeedbackRequest struct {
	Rating     int             `json:"rating"`
	Comment    string          `json:"comment"`
	Categories json.RawMessage `json:"categories"`
	Context    json.RawMessage `json:"context"`
}

// CreateFeedback 提交优化结果反馈
// POST /api/feedback
func (h *Handler) CreateFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "评分须在 1-5 之间"})
		return
	}

	f := model.Feedback{
		Rating:     req.Rating,
		Comment:    req.Comment,
		Categories: req.Categories,
		Context:    req.Context,
	}
	if err := h.store.InsertFeedback(&f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存反馈失败"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": f.ID})
}

// ListFeedback 查询最近反馈
// GET /api/feedback?limit=50
func (h *Handler) ListFeedback(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 limit"})
			return
		}
		limit = n
	}

	items, err := h.store.ListFeedback(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取反馈失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": items})
}
