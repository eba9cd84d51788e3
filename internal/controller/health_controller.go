package controller

import (
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Sessions *service.SessionStore
}

func NewHealthController(sessions *service.SessionStore) *HealthController {
	return &HealthController{Sessions: sessions}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"sessions": c.Sessions.Len(),
		},
	})
}
