package controller

import (
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *service.CatalogService
}

func NewCatalogController(svc *service.CatalogService) *CatalogController {
	return &CatalogController{Service: svc}
}

// @Summary 获取有声书列表
// @Tags 内容目录
// @Produce json
// @Param category query string false "分类，All 表示全部"
// @Param sort query string false "排序字段" Enums(title, rating, duration)
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/audiobooks [get]
func (c *CatalogController) ListAudiobooks(ctx *gin.Context) {
	var q service.CatalogQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	books, err := c.Service.ListAudiobooks(q)
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, util.ListResponse{List: books, Total: len(books)})
}

// @Summary 获取有声书详情
// @Tags 内容目录
// @Produce json
// @Param id path string true "有声书ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/audiobooks/{id} [get]
func (c *CatalogController) GetAudiobook(ctx *gin.Context) {
	book, err := c.Service.GetAudiobook(ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, book)
}

// @Summary 获取练习列表
// @Tags 内容目录
// @Produce json
// @Param category query string false "分类，All 表示全部"
// @Param sort query string false "排序字段" Enums(title, difficulty, duration)
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/exercises [get]
func (c *CatalogController) ListExercises(ctx *gin.Context) {
	var q service.CatalogQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exercises, err := c.Service.ListExercises(q)
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, util.ListResponse{List: exercises, Total: len(exercises)})
}

// @Summary 获取练习详情
// @Tags 内容目录
// @Produce json
// @Param id path string true "练习ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exercises/{id} [get]
func (c *CatalogController) GetExercise(ctx *gin.Context) {
	exercise, err := c.Service.GetExercise(ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// @Summary 获取脑力训练游戏列表
// @Tags 内容目录
// @Produce json
// @Param category query string false "分类，All 表示全部"
// @Param sort query string false "排序字段" Enums(title, difficulty)
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/games [get]
func (c *CatalogController) ListGames(ctx *gin.Context) {
	var q service.CatalogQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	games, err := c.Service.ListGames(q)
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, util.ListResponse{List: games, Total: len(games)})
}

// @Summary 获取游戏详情
// @Tags 内容目录
// @Produce json
// @Param id path string true "游戏ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/games/{id} [get]
func (c *CatalogController) GetGame(ctx *gin.Context) {
	game, err := c.Service.GetGame(ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	util.Success(ctx, game)
}
