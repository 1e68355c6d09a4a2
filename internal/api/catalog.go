package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"routier/internal/model"
)

// VehicleRequest 新增/修改车辆请求
// 修改时只更新出现的字段
type VehicleRequest struct {
	Name            *string  `json:"name"`
	LengthM         *float64 `json:"length_m"`
	WidthM          *float64 `json:"width_m"`
	HeightM         *float64 `json:"height_m"`
	UsableVolumePct *float64 `json:"usable_volume_percentage"`
}

// ListVehicles 列出车辆目录
// GET /api/vehicles
func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.store.ListVehicles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取车辆目录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// CreateVehicle 新增车辆
// POST /api/vehicles
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "车辆名称不能为空"})
		return
	}

	v := model.Vehicle{Name: strings.TrimSpace(*req.Name)}
	if req.LengthM != nil {
		v.LengthM = *req.LengthM
	}
	if req.WidthM != nil {
		v.WidthM = *req.WidthM
	}
	if req.HeightM != nil {
		v.HeightM = *req.HeightM
	}
	if req.UsableVolumePct != nil {
		v.UsableVolumePct = *req.UsableVolumePct
	}

	if err := h.store.CreateVehicle(&v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "新增车辆失败"})
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UpdateVehicle 修改车辆
// PATCH /api/vehicles/:id
func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的车辆 ID"})
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.LengthM != nil {
		updates["length_m"] = *req.LengthM
	}
	if req.WidthM != nil {
		updates["width_m"] = *req.WidthM
	}
	if req.HeightM != nil {
		updates["height_m"] = *req.HeightM
	}
	if req.UsableVolumePct != nil {
		updates["usable_volume_percentage"] = *req.UsableVolumePct
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "没有需要更新的字段"})
		return
	}

	if err := h.store.UpdateVehicle(id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新车辆失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// DeleteVehicle 删除车辆
// DELETE /api/vehicles/:id
func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的车辆 ID"})
		return
	}
	if err := h.store.DeleteVehicle(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除车辆失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ProductRequest 新增/修改产品请求
type ProductRequest struct {
	Name     *string  `json:"name"`
	WidthCm  *float64 `json:"width_cm"`
	HeightCm *float64 `json:"height_cm"`
	LengthCm *float64 `json:"length_cm"`
}

// ListProducts 列出产品目录
// GET /api/products
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取产品目录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct 新增产品
// POST /api/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "产品名称不能为空"})
		return
	}

	p := model.Product{Name: strings.TrimSpace(*req.Name)}
	if req.WidthCm != nil {
		p.WidthCm = *req.WidthCm
	}
	if req.HeightCm != nil {
		p.HeightCm = *req.HeightCm
	}
	if req.LengthCm != nil {
		p.LengthCm = *req.LengthCm
	}

	if err := h.store.CreateProduct(&p); err != nil {
		// 名称大小写不敏感唯一，重名返回 409
		if strings.Contains(err.Error(), "already exists") {
			c.JSON(http.StatusConflict, gin.H{"error": "产品名称已存在: " + p.Name})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "新增产品失败"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProduct 修改产品
// PATCH /api/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的产品 ID"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.WidthCm != nil {
		updates["width_cm"] = *req.WidthCm
	}
	if req.HeightCm != nil {
		updates["height_cm"] = *req.HeightCm
	}
	if req.LengthCm != nil {
		updates["length_cm"] = *req.LengthCm
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "没有需要更新的字段"})
		return
	}

	if err := h.store.UpdateProduct(id, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新产品失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// DeleteProduct 删除产品
// DELETE /api/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的产品 ID"})
		return
	}
	if err := h.store.DeleteProduct(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除产品失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
