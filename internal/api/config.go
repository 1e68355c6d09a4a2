package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routier/internal/config"
)

// ConfigResponse 运行配置响应
// 认证令牌不回传，只标记是否已配置
type ConfigResponse struct {
	WebhookURL             string  `json:"webhookUrl"`
	AuthTokenSet           bool    `json:"authTokenSet"`
	TimeoutSeconds         int     `json:"timeoutSeconds"`
	AllowOrderSplitting    bool    `json:"allowOrderSplitting"`
	DefaultUsableVolumePct float64 `json:"defaultUsableVolumePct"`
}

// UpdateConfigRequest 更新运行配置请求，只更新出现的字段
type UpdateConfigRequest struct {
	WebhookURL             *string  `json:"webhookUrl"`
	AuthToken              *string  `json:"authToken"`
	TimeoutSeconds         *int     `json:"timeoutSeconds"`
	AllowOrderSplitting    *bool    `json:"allowOrderSplitting"`
	DefaultUsableVolumePct *float64 `json:"defaultUsableVolumePct"`
}

// GetConfig 获取运行配置
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		WebhookURL:             h.cfg.Optimizer.WebhookURL,
		AuthTokenSet:           h.cfg.Optimizer.AuthToken != "",
		TimeoutSeconds:         h.cfg.Optimizer.TimeoutSeconds,
		AllowOrderSplitting:    h.cfg.Optimizer.AllowOrderSplitting,
		DefaultUsableVolumePct: h.cfg.Fleet.DefaultUsableVolumePct,
	})
}

// UpdateConfig 更新运行配置并写回 config.toml
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if req.WebhookURL != nil {
		h.cfg.Optimizer.WebhookURL = *req.WebhookURL
	}
	if req.AuthToken != nil {
		h.cfg.Optimizer.AuthToken = *req.AuthToken
	}
	if req.TimeoutSeconds != nil {
		if *req.TimeoutSeconds < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timeoutSeconds 须大于 0"})
			return
		}
		h.cfg.Optimizer.TimeoutSeconds = *req.TimeoutSeconds
	}
	if req.AllowOrderSplitting != nil {
		h.cfg.Optimizer.AllowOrderSplitting = *req.AllowOrderSplitting
	}
	if req.DefaultUsableVolumePct != nil {
		if *req.DefaultUsableVolumePct <= 0 || *req.DefaultUsableVolumePct > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "defaultUsableVolumePct 须在 1-100 之间"})
			return
		}
		h.cfg.Fleet.DefaultUsableVolumePct = *req.DefaultUsableVolumePct
	}

	if err := config.SaveConfig(h.cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存配置失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "配置更新成功"})
}
