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

func TestCommentService_CreateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockComments := service.NewMockCommentStore(ctrl)
	mockVideos := service.NewMockVideoStore(ctrl)
	mockEvents := service.NewMockEventPublisher(ctrl)

	svc := service.NewCommentService(mockComments, mockVideos, mockEvents)

	mockVideos.EXPECT().GetByID(int64(10)).Return(&model.Video{ID: 10}, nil)
	mockComments.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *model.Comment) error {
		assert.Equal(t, int64(3), c.UserID)
		assert.Equal(t, int64(10), c.VideoID)
		assert.Equal(t, "Amazing content!", c.Content)
		c.ID = 1
		return nil
	})
	mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, event *infraKafka.VideoEvent) error {
			assert.Equal(t, infraKafka.EventVideoCommented, event.Type)
			return nil
		})

	info, err := svc.CreateComment(3, 10, &dto.CommentCreateRequest{Content: "Amazing content!"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.ID)
	assert.Equal(t, "Amazing content!", info.Content)
}

func TestCommentService_CreateComment_VideoNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockComments := service.NewMockCommentStore(ctrl)
	mockVideos := service.NewMockVideoStore(ctrl)

	svc := service.NewCommentService(mockComments, mockVideos, nil)

	mockVideos.EXPECT().GetByID(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateComment(3, 99, &dto.CommentCreateRequest{Content: "hello"})
	assert.ErrorIs(t, err, service.ErrVideoNotFound)
}

func TestCommentService_ListComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockComments := service.NewMockCommentStore(ctrl)
	mockVideos := service.NewMockVideoStore(ctrl)

	svc := service.NewCommentService(mockComments, mockVideos, nil)

	comments := []model.Comment{
		{ID: 2, UserID: 3, VideoID: 10, Content: "second", User: model.User{ID: 3, UserName: "sarah"}},
		{ID: 1, UserID: 4, VideoID: 10, Content: "first", User: model.User{ID: 4, UserName: "mike"}},
	}

	mockVideos.EXPECT().GetByID(int64(10)).Return(&model.Video{ID: 10}, nil)
	mockComments.EXPECT().ListByVideo(int64(10), 0, 50).Return(comments, int64(2), nil)

	data, err := svc.ListComments(10, &dto.CommentListQuery{Limit: 50, Offset: 0})
	require.NoError(t, err)
	require.Len(t, data.Comments, 2)
	assert.Equal(t, int64(2), data.Total)
	require.NotNil(t, data.Comments[0].User)
	assert.Equal(t, "sarah", data.Comments[0].User.Username)
}
