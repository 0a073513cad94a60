package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shermian8845-code/Videoshare/internal/config"
	"github.com/shermian8845-code/Videoshare/internal/infra/database"
	infraES "github.com/shermian8845-code/Videoshare/internal/infra/elasticsearch"
	infraKafka "github.com/shermian8845-code/Videoshare/internal/infra/kafka"
	"github.com/shermian8845-code/Videoshare/internal/repository"
	"github.com/shermian8845-code/Videoshare/internal/service"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"go.uber.org/zap"
)

// 搜索索引同步 worker
// 消费 video_events 主题，按事件刷新 ES 中对应视频的文档，
// 启动时先做一次全量同步兜底
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	db := database.Get()
	videoRepo := repository.NewVideoRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	searchService := service.NewSearchService(videoRepo, ratingRepo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	// 全量同步一次，覆盖 worker 停机期间漏掉的事件
	if err := searchService.SyncAllToES(ctx); err != nil {
		logger.Error("Initial full sync failed", zap.Error(err))
	}

	topic := cfg.Kafka.Topics["video_events"]
	if topic == "" {
		topic = "video_events"
	}
	groupID := "videoshare-search-sync"

	logger.Info("Search sync worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	eventHandler := func(event *infraKafka.VideoEvent) error {
		return searchService.SyncVideoToES(ctx, event.VideoID)
	}

	infraKafka.StartVideoEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, eventHandler)
}
