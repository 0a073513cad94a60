package router

import (
	"github.com/shermian8845-code/Videoshare/internal/api/handler"
	"github.com/shermian8845-code/Videoshare/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	ratingHandler *handler.RatingHandler,
	creatorMiddleware gin.HandlerFunc,
) {
	api := r.Group("/api")

	// --- 认证模块 ---
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/user", middleware.AuthRequired(), authHandler.Me)

	// --- 视频模块 ---
	videos := api.Group("/videos")
	{
		// 浏览和搜索不需要登录
		videos.GET("", videoHandler.List)
		videos.GET("/:id", videoHandler.GetDetail)

		// 发布视频仅限创作者
		videos.POST("", middleware.AuthRequired(), creatorMiddleware, videoHandler.Create)

		// --- 评论模块 ---
		videos.GET("/:id/comments", commentHandler.List)
		videos.POST("/:id/comments", middleware.AuthRequired(), commentHandler.Create)

		// --- 评分模块 ---
		ratings := videos.Group("/:id/rating", middleware.AuthRequired())
		{
			ratings.GET("", ratingHandler.Get)
			ratings.POST("", ratingHandler.Upsert)
		}
	}
}
