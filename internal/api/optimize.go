package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"routier/internal/pipeline"
)

// OptimizeAPIRequest 优化请求
type OptimizeAPIRequest struct {
	OrdersText          string  `json:"ordersText"`          // 订单 JSON 原文
	TruckIDs            []int64 `json:"truckIds"`            // 参与优化的车辆 ID（按选择顺序）
	AllowOrderSplitting *bool   `json:"allowOrderSplitting"` // 为空时取配置默认值
}

// Optimize 执行路线优化
// 解析订单文本、按产品目录补全尺寸、组装车队描述后转发给外部优化服务，
// 响应体原样透传给前端
// POST /api/optimize
func (h *Handler) Optimize(c *gin.Context) {
	var req OptimizeAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.OrdersText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ordersText 不能为空"})
		return
	}
	if len(req.TruckIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请至少选择一辆车"})
		return
	}

	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取目录数据失败"})
		return
	}

	selected, err := h.store.GetVehiclesByIDs(req.TruckIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取车辆数据失败"})
		return
	}
	if len(selected) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "所选车辆不存在"})
		return
	}

	allowSplitting := h.cfg.Optimizer.AllowOrderSplitting
	if req.AllowOrderSplitting != nil {
		allowSplitting = *req.AllowOrderSplitting
	}

	result, err := pipeline.Run(snap, req.OrdersText, selected, allowSplitting, h.cfg.Fleet.DefaultUsableVolumePct)
	if err != nil {
		if errors.Is(err, pipeline.ErrCatalogConflict) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "订单数据无法解析: " + err.Error()})
		return
	}

	// 补全校验未通过：不请求优化服务，把缺失的产品名返回给前端
	if result.Blocked() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":              pipeline.UnresolvedMessage(result.Report.Unresolved),
			"unresolvedProducts": result.Report.Unresolved,
		})
		return
	}

	body, err := h.optimizerClient().Optimize(c.Request.Context(), result.Payload)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
