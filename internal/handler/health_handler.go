package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler 负责健康探针。能走到这里说明配置与模型工件都已成功加载。
type HealthHandler struct {
	scorerProvider string
	featureCount   int
}

// NewHealthHandler 创建一个新的 HealthHandler 实例。
func NewHealthHandler(scorerProvider string, featureCount int) *HealthHandler {
	return &HealthHandler{scorerProvider: scorerProvider, featureCount: featureCount}
}

// Check 返回服务就绪信息。
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"scorer":   h.scorerProvider,
		"features": h.featureCount,
	})
}
