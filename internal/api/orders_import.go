package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"routier/internal/parser"
)

// ImportOrders 把上传的 Excel 订单表转换为平铺行
// 不落库：前端拿到行数据后自行拼装订单 JSON 再调用优化接口
// POST /api/orders/import
func (h *Handler) ImportOrders(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	uploadedFile := files[0]
	if ext := strings.ToLower(filepath.Ext(uploadedFile.Filename)); ext != ".xlsx" && ext != ".xlsm" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "仅支持 .xlsx 文件"})
		return
	}

	f, err := uploadedFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer f.Close()

	sheet, err := parser.NewOrdersSheetParser().Parse(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "解析 Excel 失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, sheet)
}
