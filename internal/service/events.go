package service

import (
	"context"
	"time"

	"github.com/shermian8845-code/Videoshare/internal/config"
	infraKafka "github.com/shermian8845-code/Videoshare/internal/infra/kafka"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"go.uber.org/zap"
)

// EventPublisher 视频事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, event *infraKafka.VideoEvent) error
}

// KafkaEventPublisher 基于 Kafka 的事件发布实现
type KafkaEventPublisher struct{}

func NewKafkaEventPublisher() *KafkaEventPublisher {
	return &KafkaEventPublisher{}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, event *infraKafka.VideoEvent) error {
	topic := config.GetKafka().Topics["video_events"]
	if topic == "" {
		topic = "video_events"
	}
	return infraKafka.SendVideoEvent(ctx, topic, event)
}

// publishVideoEvent 尽力发送视频事件，失败只记日志不影响主流程
func publishVideoEvent(events EventPublisher, eventType string, videoID, userID int64) {
	if events == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	event := &infraKafka.VideoEvent{Type: eventType, VideoID: videoID, UserID: userID}
	if err := events.Publish(ctx, event); err != nil {
		logger.Warn("Publish video event failed",
			zap.String("type", eventType),
			zap.Int64("video_id", videoID),
			zap.Error(err),
		)
	}
}
