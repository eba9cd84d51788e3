package controller

import (
	"errors"

	"mindmate_backend/internal/assessment"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary 获取评估题目
// @Tags 健康评估
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessment/questions [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	util.Success(ctx, c.Service.Questions())
}

// @Summary 计算评估结果
// @Description 提交完整答案，返回健康分数与推荐方案
// @Tags 健康评估
// @Accept json
// @Produce json
// @Param body body service.ScoreRequest true "答案"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/assessment/score [post]
func (c *AssessmentController) Score(ctx *gin.Context) {
	var req service.ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.Service.Evaluate(ctx.Request.Context(), req.Answers)
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, outcome)
}

// @Summary 开始评估会话
// @Tags 健康评估
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/assessment/sessions [post]
func (c *AssessmentController) StartSession(ctx *gin.Context) {
	util.Created(ctx, c.Service.StartSession(ctx.Request.Context()))
}

// @Summary 获取评估会话
// @Tags 健康评估
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assessment/sessions/{id} [get]
func (c *AssessmentController) GetSession(ctx *gin.Context) {
	state, err := c.Service.GetSession(ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, state)
}

// @Summary 提交当前题目答案
// @Description 记录答案并进入下一题；最后一题返回评估结果
// @Tags 健康评估
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param body body service.AnswerRequest true "答案"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assessment/sessions/{id}/answer [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	state, err := c.Service.SubmitAnswer(ctx.Request.Context(), ctx.Param("id"), *req.Value)
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, state)
}

// @Summary 返回上一题
// @Tags 健康评估
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assessment/sessions/{id}/back [post]
func (c *AssessmentController) GoBack(ctx *gin.Context) {
	state, err := c.Service.GoBack(ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, state)
}

// writeError 将业务错误映射为 HTTP 状态码
func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, assessment.ErrIncompleteAssessment),
		errors.Is(err, util.ErrUnknownCategory),
		errors.Is(err, util.ErrUnknownSortKey):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrCatalogItemNotFound):
		util.NotFound(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
