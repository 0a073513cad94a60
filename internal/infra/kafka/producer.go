package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shermian8845-code/Videoshare/internal/config"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 视频事件类型
const (
	EventVideoCreated   = "video_created"
	EventVideoViewed    = "video_viewed"
	EventVideoCommented = "video_commented"
	EventRatingChanged  = "rating_changed"
)

// VideoEvent 视频事件消息体，worker 消费后刷新搜索索引
type VideoEvent struct {
	Type    string `json:"type"`
	VideoID int64  `json:"video_id"`
	UserID  int64  `json:"user_id,omitempty"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendVideoEvent 发送视频事件到 Kafka
func SendVideoEvent(ctx context.Context, topic string, event *VideoEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal video event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("video-%d", event.VideoID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send video event: %w", err)
	}

	logger.Debug("Video event sent",
		zap.Int64("video_id", event.VideoID),
		zap.String("type", event.Type),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
