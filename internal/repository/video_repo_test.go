package repository_test

import (
	"testing"
	"time"

	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVideoRepository_IncrementViews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVideoRepository(db)

	// 相对更新，不回写内存中的计数
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "videos" SET "views"=views \+ 1 WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.IncrementViews(10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_IncrementViews_MissingVideo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVideoRepository(db)

	// 不存在的视频不报错，影响行数为 0
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "videos" SET "views"=views \+ 1 WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.IncrementViews(999)
	require.NoError(t, err)
}

func TestVideoRepository_ListVideos_SearchPattern(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVideoRepository(db)

	now := time.Now()
	search := "yoga"

	// 搜索词作用于标题/发行方/类型，大小写不敏感
	mock.ExpectQuery(`SELECT count\(\*\) FROM "videos" WHERE .*title ILIKE .* OR publisher ILIKE .* OR genre ILIKE `).
		WithArgs("%yoga%", "%yoga%", "%yoga%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "videos" WHERE .*title ILIKE .* OR publisher ILIKE .* OR genre ILIKE .* ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "creator_id", "title", "genre", "views", "created_at"}).
			AddRow(42, 7, "Morning Yoga Routine", "education", 99, now))

	videos, total, err := repo.ListVideos(0, 20, &search, nil, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, videos, 1)
	assert.Equal(t, "Morning Yoga Routine", videos[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_ListVideos_GenreFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVideoRepository(db)

	genre := "education"

	mock.ExpectQuery(`SELECT count\(\*\) FROM "videos" WHERE genre = `).
		WithArgs("education").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT \* FROM "videos" WHERE genre = .* ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	videos, total, err := repo.ListVideos(0, 20, nil, &genre, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, videos)
}

func TestVideoRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVideoRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "videos" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVideoRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "videos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	video := &model.Video{
		CreatorID: 7,
		Title:     "Morning Yoga Routine",
		Publisher: "Wellness Studio",
		Producer:  "John Creator",
		Genre:     "education",
		AgeRating: "G",
	}
	err := repo.Create(video)
	require.NoError(t, err)
	assert.Equal(t, int64(42), video.ID)
}
