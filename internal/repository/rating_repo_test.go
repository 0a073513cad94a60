package repository_test

import (
	"testing"

	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestRatingRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRatingRepository(db)

	// 单条写入，冲突时原地更新评分值
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "ratings" .*ON CONFLICT \("user_id","video_id"\) DO UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Upsert(&model.Rating{UserID: 3, VideoID: 10, Value: 5})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_AverageByVideo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRatingRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(value\), 0\) AS average, COUNT\(id\) AS total FROM "ratings"`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"average", "total"}).AddRow(4.0, 2))

	agg, err := repo.AverageByVideo(10)
	require.NoError(t, err)
	assert.Equal(t, 4.0, agg.Average)
	assert.Equal(t, int64(2), agg.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_AverageByVideo_NoRatings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRatingRepository(db)

	// COALESCE 保证无评分时返回 {0, 0} 而不是 NULL
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(value\), 0\) AS average, COUNT\(id\) AS total FROM "ratings"`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"average", "total"}).AddRow(0.0, 0))

	agg, err := repo.AverageByVideo(99)
	require.NoError(t, err)
	assert.Equal(t, 0.0, agg.Average)
	assert.Equal(t, int64(0), agg.Total)
}

func TestRatingRepository_AverageByVideos_FillsMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRatingRepository(db)

	mock.ExpectQuery(`SELECT video_id, COALESCE\(AVG\(value\), 0\) AS average, COUNT\(id\) AS total FROM "ratings" .*GROUP BY .?video_id.?`).
		WillReturnRows(sqlmock.NewRows([]string{"video_id", "average", "total"}).AddRow(1, 4.5, 2))

	result, err := repo.AverageByVideos([]int64{1, 2})
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, 4.5, result[1].Average)
	assert.Equal(t, int64(2), result[1].Total)

	// 没有评分记录的视频填零值
	assert.Equal(t, 0.0, result[2].Average)
	assert.Equal(t, int64(0), result[2].Total)
}

func TestRatingRepository_AverageByVideos_Empty(t *testing.T) {
	db, _ := newMockDB(t)
	repo := repository.NewRatingRepository(db)

	result, err := repo.AverageByVideos(nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRatingRepository_GetByUserAndVideo_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewRatingRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "ratings" WHERE user_id = .* AND video_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "video_id", "value"}))

	_, err := repo.GetByUserAndVideo(3, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
