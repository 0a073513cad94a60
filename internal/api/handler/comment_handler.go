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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List 视频评论列表
// @Summary 评论列表
// @Description 获取视频的评论列表，按评论时间倒序
// @Tags 评论
// @Produce json
// @Param id path int true "视频 ID"
// @Param limit query int false "每页数量" default(50)
// @Param offset query int false "偏移量" default(0)
// @Success 200 {object} response.Response{data=dto.CommentListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var query dto.CommentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.commentService.ListComments(videoID, &query)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("List comments failed", zap.Int64("video_id", videoID), zap.Error(err))
		response.InternalError(c, "获取评论列表失败")
		return
	}

	response.OK(c, "获取成功", data)
}

// Create 发表评论
// @Summary 发表评论
// @Description 已登录用户对视频发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频 ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} response.Response{data=dto.CommentInfo} "评论成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未认证"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	videoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.commentService.CreateComment(userID, videoID, &req)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Create comment failed",
			zap.Int64("user_id", userID),
			zap.Int64("video_id", videoID),
			zap.Error(err),
		)
		response.InternalError(c, "发表评论失败")
		return
	}

	response.Created(c, "评论成功", info)
}
