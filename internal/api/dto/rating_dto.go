package dto

// RatingUpsertRequest 评分请求，1-5 星
type RatingUpsertRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// RatingData 评分接口响应
// UserRating 为空表示当前用户尚未评分
type RatingData struct {
	UserRating    *int    `json:"user_rating"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}
