package handler

import (
	"errors"
	"strconv"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	"github.com/shermian8845-code/Videoshare/internal/api/middleware"
	"github.com/shermian8845-code/Videoshare/internal/api/response"
	"github.com/shermian8845-code/Videoshare/internal/service"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService  *service.VideoService
	searchService *service.SearchService
}

func NewVideoHandler(videoService *service.VideoService, searchService *service.SearchService) *VideoHandler {
	return &VideoHandler{videoService: videoService, searchService: searchService}
}

// List 视频列表
// @Summary 视频列表
// @Description 分页浏览视频，支持标题/发行方/类型子串搜索和类型精确筛选，按发布时间倒序
// @Tags 视频
// @Produce json
// @Param search query string false "搜索关键字"
// @Param genre query string false "类型筛选"
// @Param limit query int false "每页数量" default(20)
// @Param offset query int false "偏移量" default(0)
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	var query dto.ListVideosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.searchService.Search(c.Request.Context(), &query)
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c, "获取视频列表失败")
		return
	}

	response.OK(c, "获取成功", data)
}

// GetDetail 视频详情
// @Summary 视频详情
// @Description 获取视频详情（含创作者和评分聚合），每次访问观看次数加一
// @Tags 视频
// @Produce json
// @Param id path int true "视频 ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) GetDetail(c *gin.Context) {
	videoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	info, err := h.videoService.GetDetail(videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get video detail failed", zap.Int64("video_id", videoID), zap.Error(err))
		response.InternalError(c, "获取视频详情失败")
		return
	}

	response.OK(c, "获取成功", info)
}

// Create 发布视频
// @Summary 发布视频
// @Description 创作者发布新视频（仅 creator 角色）
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VideoCreateRequest true "视频信息"
// @Success 201 {object} response.Response{data=dto.VideoInfo} "发布成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未认证"
// @Failure 403 {object} response.ErrorResponse "非创作者账号"
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	var req dto.VideoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.videoService.Create(userID, &req)
	if err != nil {
		logger.Error("Create video failed", zap.Int64("user_id", userID), zap.Error(err))
		response.InternalError(c, "发布视频失败")
		return
	}

	response.Created(c, "发布成功", info)
}

// parseIDParam 解析路径中的数字 ID，非法时直接写 400 响应
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "无效的 "+name+" 参数")
		return 0, false
	}
	return id, true
}
