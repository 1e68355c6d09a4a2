package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	VehicleCount        int  `json:"vehicleCount"`        // 车辆目录数量
	ProductCount        int  `json:"productCount"`        // 产品目录数量
	OptimizerConfigured bool `json:"optimizerConfigured"` // 是否已配置优化服务地址
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取目录数据失败"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		VehicleCount:        len(snap.Vehicles),
		ProductCount:        len(snap.Products),
		OptimizerConfigured: h.cfg.Optimizer.WebhookURL != "",
	})
}
