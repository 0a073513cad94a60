package handler

import (
	"errors"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	"github.com/shermian8845-code/Videoshare/internal/api/middleware"
	"github.com/shermian8845-code/Videoshare/internal/api/response"
	"github.com/shermian8845-code/Videoshare/internal/service"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RatingHandler struct {
	ratingService *service.RatingService
}

func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// Get 查询评分
// @Summary 查询评分
// @Description 获取当前用户对视频的评分和视频的评分聚合
// @Tags 评分
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频 ID"
// @Success 200 {object} response.Response{data=dto.RatingData} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未认证"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/rating [get]
func (h *RatingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	videoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	data, err := h.ratingService.GetForUser(c.Request.Context(), userID, videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get rating failed",
			zap.Int64("user_id", userID),
			zap.Int64("video_id", videoID),
			zap.Error(err),
		)
		response.InternalError(c, "获取评分失败")
		return
	}

	response.OK(c, "获取成功", data)
}

// Upsert 提交评分
// @Summary 提交评分
// @Description 对视频打分（1-5 星），同一用户重复评分以最后一次为准
// @Tags 评分
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频 ID"
// @Param request body dto.RatingUpsertRequest true "评分值"
// @Success 200 {object} response.Response{data=dto.RatingData} "评分成功"
// @Failure 400 {object} response.ErrorResponse "评分超出范围"
// @Failure 401 {object} response.ErrorResponse "未认证"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/rating [post]
func (h *RatingHandler) Upsert(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	videoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RatingUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "评分必须是 1-5 的整数")
		return
	}

	data, err := h.ratingService.Upsert(c.Request.Context(), userID, videoID, &req)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Upsert rating failed",
			zap.Int64("user_id", userID),
			zap.Int64("video_id", videoID),
			zap.Error(err),
		)
		response.InternalError(c, "提交评分失败")
		return
	}

	response.OK(c, "评分成功", data)
}
