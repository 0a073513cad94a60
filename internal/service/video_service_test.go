package service_test

import (
	"testing"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	infraKafka "github.com/shermian8845-code/Videoshare/internal/infra/kafka"
	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/internal/service"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVideoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVideos := service.NewMockVideoStore(ctrl)
	mockRatings := service.NewMockRatingAggregator(ctrl)
	mockEvents := service.NewMockEventPublisher(ctrl)

	svc := service.NewVideoService(mockVideos, mockRatings, mockEvents)

	mockVideos.EXPECT().Create(gomock.Any()).DoAndReturn(func(v *model.Video) error {
		assert.Equal(t, int64(7), v.CreatorID)
		assert.Equal(t, "Morning Yoga Routine", v.Title)
		v.ID = 42
		return nil
	})
	mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, event *infraKafka.VideoEvent) error {
			assert.Equal(t, infraKafka.EventVideoCreated, event.Type)
			assert.Equal(t, int64(42), event.VideoID)
			return nil
		})

	info, err := svc.Create(7, &dto.VideoCreateRequest{
		Title:     "Morning Yoga Routine",
		Publisher: "Wellness Studio",
		Producer:  "John Creator",
		Genre:     "education",
		AgeRating: "G",
		Duration:  300,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), info.ID)
	assert.Equal(t, int64(0), info.Views)
	assert.Equal(t, float64(0), info.AverageRating)
	assert.Equal(t, int64(0), info.TotalRatings)
}

func TestVideoService_GetDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVideos := service.NewMockVideoStore(ctrl)
	mockRatings := service.NewMockRatingAggregator(ctrl)
	mockEvents := service.NewMockEventPublisher(ctrl)

	svc := service.NewVideoService(mockVideos, mockRatings, mockEvents)

	video := &model.Video{
		ID:        42,
		CreatorID: 7,
		Title:     "Morning Yoga Routine",
		Genre:     "education",
		Views:     99,
		Creator:   model.User{ID: 7, UserName: "johncreator"},
	}

	mockVideos.EXPECT().GetByIDWithCreator(int64(42)).Return(video, nil)
	mockVideos.EXPECT().IncrementViews(int64(42)).Return(nil)
	mockRatings.EXPECT().AverageByVideo(int64(42)).Return(&model.RatingAggregate{Average: 4.5, Total: 2}, nil)
	mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	info, err := svc.GetDetail(42)
	require.NoError(t, err)

	// 详情返回的观看数包含本次访问
	assert.Equal(t, int64(100), info.Views)
	assert.Equal(t, 4.5, info.AverageRating)
	assert.Equal(t, int64(2), info.TotalRatings)
	require.NotNil(t, info.Creator)
	assert.Equal(t, "johncreator", info.Creator.Username)
}

func TestVideoService_GetDetail_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVideos := service.NewMockVideoStore(ctrl)
	mockRatings := service.NewMockRatingAggregator(ctrl)

	svc := service.NewVideoService(mockVideos, mockRatings, nil)

	mockVideos.EXPECT().GetByIDWithCreator(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetDetail(99)
	assert.ErrorIs(t, err, service.ErrVideoNotFound)
}

func TestVideoService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVideos := service.NewMockVideoStore(ctrl)
	mockRatings := service.NewMockRatingAggregator(ctrl)

	svc := service.NewVideoService(mockVideos, mockRatings, nil)

	videos := []model.Video{
		{ID: 2, Title: "Newest", Creator: model.User{ID: 1, UserName: "alice"}},
		{ID: 1, Title: "Older", Creator: model.User{ID: 1, UserName: "alice"}},
	}

	mockVideos.EXPECT().
		ListVideos(0, 20, gomock.Nil(), gomock.Nil(), true).
		Return(videos, int64(2), nil)
	mockRatings.EXPECT().AverageByVideos([]int64{2, 1}).Return(map[int64]model.RatingAggregate{
		2: {Average: 4, Total: 3},
		1: {},
	}, nil)

	data, err := svc.List(&dto.ListVideosQuery{Limit: 20, Offset: 0})
	require.NoError(t, err)
	require.Len(t, data.Videos, 2)
	assert.Equal(t, int64(2), data.Total)

	// 有评分的带聚合，没评分的保持零值
	assert.Equal(t, float64(4), data.Videos[0].AverageRating)
	assert.Equal(t, int64(3), data.Videos[0].TotalRatings)
	assert.Equal(t, float64(0), data.Videos[1].AverageRating)
	assert.Equal(t, int64(0), data.Videos[1].TotalRatings)
}

func TestVideoService_List_WithFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVideos := service.NewMockVideoStore(ctrl)
	mockRatings := service.NewMockRatingAggregator(ctrl)

	svc := service.NewVideoService(mockVideos, mockRatings, nil)

	mockVideos.EXPECT().
		ListVideos(0, 10, gomock.Not(gomock.Nil()), gomock.Not(gomock.Nil()), true).
		DoAndReturn(func(offset, limit int, search, genre *string, withCreator bool) ([]model.Video, int64, error) {
			assert.Equal(t, "yoga", *search)
			assert.Equal(t, "education", *genre)
			return nil, 0, nil
		})
	mockRatings.EXPECT().AverageByVideos([]int64{}).Return(map[int64]model.RatingAggregate{}, nil)

	data, err := svc.List(&dto.ListVideosQuery{Search: "yoga", Genre: "education", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, data.Videos)
	assert.Equal(t, int64(0), data.Total)
}
