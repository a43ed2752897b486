package v1

import (
	"net/http"

	"consult-contact-relay/internal/delivery/http/response"
	"consult-contact-relay/internal/domain"

	"github.com/gin-gonic/gin"
)

// MsgConfigLoaded is the diagnostic route's confirmation message
const MsgConfigLoaded = "이메일 설정이 로드되었습니다."

type DiagnosticsHandler struct {
	diagnosticsUC domain.DiagnosticsUsecase
	healthUC      domain.HealthUsecase
}

// NewDiagnosticsHandler registers health and, when enabled, the mail config check
func NewDiagnosticsHandler(api *gin.RouterGroup, diagnosticsUC domain.DiagnosticsUsecase, healthUC domain.HealthUsecase, enableMailCheck bool) {
	handler := &DiagnosticsHandler{
		diagnosticsUC: diagnosticsUC,
		healthUC:      healthUC,
	}

	api.GET("/health", handler.Health)
	if enableMailCheck {
		api.GET("/test-email", handler.EmailConfig)
	}
}

// Health godoc
// @Summary      Health Check
// @Tags         ops
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *DiagnosticsHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "System operational", h.healthUC.Check(c.Request.Context()))
}

// EmailConfig godoc
// @Summary      Mail Configuration Check
// @Description  Reports which mail settings are loaded. The credential is reported by length only.
// @Tags         ops
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /test-email [get]
func (h *DiagnosticsHandler) EmailConfig(c *gin.Context) {
	response.Success(c, http.StatusOK, MsgConfigLoaded, h.diagnosticsUC.EmailConfig(c.Request.Context()))
}
