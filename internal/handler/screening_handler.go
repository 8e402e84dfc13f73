// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"mind-screen-go/internal/feature"
	"mind-screen-go/internal/model"
	"mind-screen-go/internal/service"
	"mind-screen-go/pkg/log"
)

// ScreeningHandler 负责处理风险筛查相关的 API 请求。
type ScreeningHandler struct {
	screeningService service.ScreeningService
}

// NewScreeningHandler 创建一个新的 ScreeningHandler 实例。
func NewScreeningHandler(screeningService service.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{screeningService: screeningService}
}

// Predict 处理一次风险筛查请求。
func (h *ScreeningHandler) Predict(c *gin.Context) {
	var req model.SurveyAnswers
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("[ScreeningHandler] 请求负载绑定失败, error: %v", err)
		// 字段校验失败与报文格式损坏分开提示
		message := "Invalid request payload."
		var bindingErrs validator.ValidationErrors
		if errors.As(err, &bindingErrs) {
			message = "Please fill in all required fields before submitting."
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": message,
		})
		return
	}

	result, err := h.screeningService.PredictRisk(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": result, "message": "success"})
}

// Options 返回表单下拉选项目录。
func (h *ScreeningHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": h.screeningService.Options(), "message": "success"})
}

// Info 返回筛查服务的标题与知情同意说明。
func (h *ScreeningHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": h.screeningService.Info(), "message": "success"})
}

// writeError 把筛查错误映射为响应：
// 输入校验错误原样返回 400；词表外取值返回 422 的通用文案，细节只进日志；
// 其余一律 500 的通用文案，绝不把内部细节透给调用方。
func (h *ScreeningHandler) writeError(c *gin.Context, err error) {
	var validationErr *feature.ValidationError
	if errors.As(err, &validationErr) {
		log.Warnf("[ScreeningHandler] 输入校验失败, field: %s", validationErr.Field)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": validationErr.Message,
		})
		return
	}

	var encodingErr *feature.EncodingError
	if errors.As(err, &encodingErr) {
		log.Warnf("[ScreeningHandler] 类别取值超出训练词表, field: %s, value: %s",
			encodingErr.Field, encodingErr.Value)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":    http.StatusUnprocessableEntity,
			"message": "An error occurred while processing your submission. Please review your answers and try again.",
		})
		return
	}

	log.Errorf("[ScreeningHandler] 筛查请求处理失败, error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    http.StatusInternalServerError,
		"message": "An error occurred during prediction. Please try again later.",
	})
}
