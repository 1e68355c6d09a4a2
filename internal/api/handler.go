package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"routier/internal/config"
	"routier/internal/optimizer"
	"routier/internal/store"
)

// Handler API 处理器
type Handler struct {
	store *store.Store
	cfg   *config.AppConfig
}

// NewHandler 创建 API 处理器
func NewHandler(store *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{
		store: store,
		cfg:   cfg,
	}
}

// optimizerClient 按当前配置构建优化服务客户端
// 每次请求构建，配置接口改过的地址立即生效
func (h *Handler) optimizerClient() *optimizer.Client {
	return optimizer.NewClient(
		h.cfg.Optimizer.WebhookURL,
		h.cfg.Optimizer.AuthToken,
		time.Duration(h.cfg.Optimizer.TimeoutSeconds)*time.Second,
	)
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 配置管理
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 车辆目录
	router.GET("/vehicles", h.ListVehicles)
	router.POST("/vehicles", h.CreateVehicle)
	router.PATCH("/vehicles/:id", h.UpdateVehicle)
	router.DELETE("/vehicles/:id", h.DeleteVehicle)

	// 产品目录
	router.GET("/products", h.ListProducts)
	router.POST("/products", h.CreateProduct)
	router.PATCH("/products/:id", h.UpdateProduct)
	router.DELETE("/products/:id", h.DeleteProduct)

	// 订单表格转换
	router.POST("/orders/import", h.ImportOrders)

	// 路线优化
	router.POST("/optimize", h.Optimize)

	// 结果反馈
	router.POST("/feedback", h.CreateFeedback)
	router.GET("/feedback", h.ListFeedback)
}
