package service_test

import (
	"context"
	"testing"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	"github.com/shermian8845-code/Videoshare/internal/cache"
	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/internal/service"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRatingService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRatings := service.NewMockRatingStore(ctrl)
	mockVideos := service.NewMockVideoStore(ctrl)
	mockCache := service.NewMockRatingAggCache(ctrl)
	mockEvents := service.NewMockEventPublisher(ctrl)

	svc := service.NewRatingService(mockRatings, mockVideos, mockCache, mockEvents)
	ctx := context.Background()

	mockVideos.EXPECT().GetByID(int64(10)).Return(&model.Video{ID: 10}, nil)
	mockRatings.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(r *model.Rating) error {
		assert.Equal(t, int64(3), r.UserID)
		assert.Equal(t, int64(10), r.VideoID)
		assert.Equal(t, 5, r.Value)
		return nil
	})
	mockCache.EXPECT().Invalidate(ctx, int64(10)).Return(nil)
	mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	mockRatings.EXPECT().AverageByVideo(int64(10)).Return(&model.RatingAggregate{Average: 4, Total: 2}, nil)

	data, err := svc.Upsert(ctx, 3, 10, &dto.RatingUpsertRequest{Rating: 5})
	require.NoError(t, err)
	require.NotNil(t, data.UserRating)
	assert.Equal(t, 5, *data.UserRating)
	assert.Equal(t, float64(4), data.AverageRating)
	assert.Equal(t, int64(2), data.TotalRatings)
}

func TestRatingService_Upsert_VideoNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRatings := service.NewMockRatingStore(ctrl)
	mockVideos := service.NewMockVideoStore(ctrl)

	svc := service.NewRatingService(mockRatings, mockVideos, nil, nil)

	mockVideos.EXPECT().GetByID(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Upsert(context.Background(), 3, 99, &dto.RatingUpsertRequest{Rating: 4})
	assert.ErrorIs(t, err, service.ErrVideoNotFound)
}

func TestRatingService_Upsert_CacheFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRatings := service.NewMockRatingStore(ctrl)
	mockVideos := service.NewMockVideoStore(ctrl)
	mockCache := service.NewMockRatingAggCache(ctrl)

	svc := service.NewRatingService(mockRatings, mockVideos, mockCache, nil)
	ctx := context.Background()

	mockVideos.EXPECT().GetByID(int64(10)).Return(&model.Video{ID: 10}, nil)
	mockRatings.EXPECT().Upsert(gomock.Any()).Return(nil)
	mockCache.EXPECT().Invalidate(ctx, int64(10)).Return(assert.AnError)
	mockRatings.EXPECT().AverageByVideo(int64(10)).Return(&model.RatingAggregate{Average: 3, Total: 1}, nil)

	data, err := svc.Upsert(ctx, 3, 10, &dto.RatingUpsertRequest{Rating: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.TotalRatings)
}

func TestRatingService_GetForUser_NoRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRatings := service.NewMockRatingStore(ctrl)
	mockVideos := service.NewMockVideoStore(ctrl)
	mockCache := service.NewMockRatingAggCache(ctrl)

	svc := service.NewRatingService(mockRatings, mockVideos, mockCache, nil)
	ctx := context.Background()

	mockVideos.EXPECT().GetByID(int64(10)).Return(&model.Video{ID: 10}, nil)
	mockCache.EXPECT().Get(ctx, int64(10)).Return(nil, cache.ErrCacheMiss)
	mockRatings.EXPECT().AverageByVideo(int64(10)).Return(&model.RatingAggregate{}, nil)
	mockCache.EXPECT().Set(ctx, int64(10), gomock.Any()).Return(nil)
	mockRatings.EXPECT().GetByUserAndVideo(int64(3), int64(10)).Return(nil, gorm.ErrRecordNotFound)

	data, err := svc.GetForUser(ctx, 3, 10)
	require.NoError(t, err)

	// 无人评分时聚合为零值，用户评分为空
	assert.Nil(t, data.UserRating)
	assert.Equal(t, float64(0), data.AverageRating)
	assert.Equal(t, int64(0), data.TotalRatings)
}

func TestRatingService_GetForUser_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRatings := service.NewMockRatingStore(ctrl)
	mockVideos := service.NewMockVideoStore(ctrl)
	mockCache := service.NewMockRatingAggCache(ctrl)

	svc := service.NewRatingService(mockRatings, mockVideos, mockCache, nil)
	ctx := context.Background()

	mockVideos.EXPECT().GetByID(int64(10)).Return(&model.Video{ID: 10}, nil)
	mockCache.EXPECT().Get(ctx, int64(10)).Return(&model.RatingAggregate{Average: 4.5, Total: 8}, nil)
	mockRatings.EXPECT().GetByUserAndVideo(int64(3), int64(10)).Return(&model.Rating{UserID: 3, VideoID: 10, Value: 4}, nil)

	data, err := svc.GetForUser(ctx, 3, 10)
	require.NoError(t, err)
	require.NotNil(t, data.UserRating)
	assert.Equal(t, 4, *data.UserRating)
	assert.Equal(t, 4.5, data.AverageRating)
	assert.Equal(t, int64(8), data.TotalRatings)
}
