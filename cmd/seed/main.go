package main

import (
	"fmt"
	"math/rand"

	"github.com/shermian8845-code/Videoshare/internal/config"
	"github.com/shermian8845-code/Videoshare/internal/infra/database"
	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/internal/repository"
	"github.com/shermian8845-code/Videoshare/pkg/logger"
	"github.com/shermian8845-code/Videoshare/pkg/utils"

	"go.uber.org/zap"
)

// 演示数据填充工具，可重复执行（已存在的用户跳过）
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

	if err := database.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Rating{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	logger.Info("Seeding demo data")

	users := seedUsers(userRepo)
	seedVideos(videoRepo, commentRepo, ratingRepo, users)

	logger.Info("Seeding completed")
	fmt.Println("演示账号（密码均为 password123）:")
	fmt.Println("  创作者: john.creator@example.com / jane.smith@example.com / mike.gamer@example.com")
	fmt.Println("  观众:   sarah.consumer@example.com")
}

func strPtr(s string) *string { return &s }

func seedUsers(userRepo *repository.UserRepository) []*model.User {
	hashed, err := utils.HashPassword("password123")
	if err != nil {
		logger.Fatal("Failed to hash seed password", zap.Error(err))
	}

	seeds := []*model.User{
		{
			Email:     "john.creator@example.com",
			UserName:  "johncreator",
			Password:  hashed,
			FirstName: strPtr("John"),
			LastName:  strPtr("Creator"),
			Role:      model.RoleCreator,
		},
		{
			Email:     "jane.smith@example.com",
			UserName:  "janesmith",
			Password:  hashed,
			FirstName: strPtr("Jane"),
			LastName:  strPtr("Smith"),
			Role:      model.RoleCreator,
		},
		{
			Email:     "mike.gamer@example.com",
			UserName:  "mikegamer",
			Password:  hashed,
			FirstName: strPtr("Mike"),
			LastName:  strPtr("Johnson"),
			Role:      model.RoleCreator,
		},
		{
			Email:     "sarah.consumer@example.com",
			UserName:  "sarahconsumer",
			Password:  hashed,
			FirstName: strPtr("Sarah"),
			LastName:  strPtr("Wilson"),
			Role:      model.RoleConsumer,
		},
	}

	users := make([]*model.User, 0, len(seeds))
	for _, seed := range seeds {
		existing, err := userRepo.GetByEmail(seed.Email)
		if err == nil {
			logger.Info("User already exists", zap.String("email", seed.Email))
			users = append(users, existing)
			continue
		}

		if err := userRepo.Create(seed); err != nil {
			logger.Fatal("Failed to create seed user", zap.String("email", seed.Email), zap.Error(err))
		}
		logger.Info("Created user", zap.String("email", seed.Email))
		users = append(users, seed)
	}
	return users
}

func seedVideos(
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
	ratingRepo *repository.RatingRepository,
	users []*model.User,
) {
	type videoSeed struct {
		title, publisher, producer, genre, ageRating, description string
		duration                                                  int
		creator                                                   *model.User
	}

	seeds := []videoSeed{
		{"Amazing Dance Performance", "Dance Studio Pro", "John Creator", "music", "G",
			"An incredible dance performance showcasing contemporary moves with upbeat music.", 180, users[0]},
		{"Cooking Made Easy: Pasta Recipe", "Kitchen Masters", "Jane Smith", "education", "G",
			"Learn how to make delicious pasta from scratch with simple ingredients.", 240, users[1]},
		{"Epic Gaming Moments Compilation", "GameStream", "Mike Johnson", "gaming", "PG-13",
			"The most epic gaming moments from this month, featuring incredible plays and funny fails.", 320, users[2]},
		{"Morning Yoga Routine", "Wellness Studio", "John Creator", "education", "G",
			"Start your day right with this energizing 5-minute morning yoga routine.", 300, users[0]},
		{"Stand-up Comedy Special", "Comedy Central", "Jane Smith", "comedy", "PG-13",
			"Hilarious stand-up comedy routine that will have you laughing out loud.", 420, users[1]},
		{"Football Highlights 2024", "Sports Network", "Mike Johnson", "sports", "G",
			"Best football moments and goals from the 2024 season.", 360, users[2]},
		{"Guitar Tutorial: Beginner Chords", "Music Academy", "John Creator", "music", "G",
			"Learn essential guitar chords that every beginner should know.", 480, users[0]},
		{"Science Experiment: Volcano", "Science Fun", "Jane Smith", "education", "G",
			"Create an amazing volcano eruption using household items.", 200, users[1]},
	}

	sampleComments := []string{
		"Amazing content! Keep it up!",
		"This is so helpful, thanks for sharing!",
		"Love this! Can you make more?",
	}

	for _, seed := range seeds {
		video := &model.Video{
			CreatorID:   seed.creator.ID,
			Title:       seed.title,
			Publisher:   seed.publisher,
			Producer:    seed.producer,
			Genre:       seed.genre,
			AgeRating:   seed.ageRating,
			Description: seed.description,
			Duration:    seed.duration,
		}
		if err := videoRepo.Create(video); err != nil {
			logger.Error("Failed to create seed video", zap.String("title", seed.title), zap.Error(err))
			continue
		}
		logger.Info("Created video", zap.String("title", seed.title))

		// 前三个用户各打一个随机分
		for _, user := range users[:3] {
			rating := &model.Rating{
				UserID:  user.ID,
				VideoID: video.ID,
				Value:   rand.Intn(5) + 1,
			}
			if err := ratingRepo.Upsert(rating); err != nil {
				logger.Warn("Failed to seed rating", zap.Int64("video_id", video.ID), zap.Error(err))
			}
		}

		for i, content := range sampleComments {
			comment := &model.Comment{
				UserID:  users[i%len(users)].ID,
				VideoID: video.ID,
				Content: content,
			}
			if err := commentRepo.Create(comment); err != nil {
				logger.Warn("Failed to seed comment", zap.Int64("video_id", video.ID), zap.Error(err))
			}
		}

		// 随机观看次数
		views := rand.Intn(900) + 100
		for i := 0; i < views; i++ {
			if err := videoRepo.IncrementViews(video.ID); err != nil {
				break
			}
		}
	}
}
