package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"
	infraES "github.com/shermian8845-code/Videoshare/internal/infra/elasticsearch"
	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"go.uber.org/zap"
)

// SearchService 视频搜索服务
// ES 可用时走 ES，否则降级到数据库模糊查询，两条路径语义一致：
// 大小写不敏感的子串匹配，按创建时间倒序
type SearchService struct {
	videos   VideoStore
	ratings  RatingAggregator
	fallback *VideoService
}

func NewSearchService(videos VideoStore, ratings RatingAggregator, fallback *VideoService) *SearchService {
	return &SearchService{videos: videos, ratings: ratings, fallback: fallback}
}

// Search 搜索视频列表
func (s *SearchService) Search(ctx context.Context, query *dto.ListVideosQuery) (*dto.VideoListData, error) {
	if !infraES.Available() {
		return s.fallback.List(query)
	}

	data, err := s.searchES(ctx, query)
	if err != nil {
		logger.Warn("ES search failed, fallback to database", zap.Error(err))
		return s.fallback.List(query)
	}
	return data, nil
}

// searchES 在 ES videos 索引中执行搜索
func (s *SearchService) searchES(ctx context.Context, query *dto.ListVideosQuery) (*dto.VideoListData, error) {
	body, err := buildSearchBody(query)
	if err != nil {
		return nil, err
	}

	resp, err := infraES.Search(ctx, infraES.VideosIndexName(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("es search failed: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source infraES.ESVideoDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode es response: %w", err)
	}

	ids := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}

	// 以数据库为准补齐最新的观看次数和评分聚合，保持 ES 返回的顺序
	videos, err := s.videos.GetByIDsWithCreator(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	aggs, err := s.ratings.AverageByVideos(ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VideoInfo, 0, len(ids))
	for _, id := range ids {
		video, ok := byID[id]
		if !ok {
			continue
		}
		agg := aggs[id]
		items = append(items, *toVideoInfo(video, &agg, true))
	}

	return &dto.VideoListData{
		Videos: items,
		Total:  result.Hits.Total.Value,
		Limit:  query.Limit,
		Offset: query.Offset,
	}, nil
}

// buildSearchBody 构造 ES 查询体
// search 用 wildcard 做大小写不敏感的子串匹配，genre 精确过滤
func buildSearchBody(query *dto.ListVideosQuery) ([]byte, error) {
	boolQuery := map[string]interface{}{}

	if query.Search != "" {
		pattern := "*" + escapeWildcard(query.Search) + "*"
		fields := []string{"title.keyword", "publisher.keyword", "genre"}
		should := make([]map[string]interface{}, 0, len(fields))
		for _, field := range fields {
			should = append(should, map[string]interface{}{
				"wildcard": map[string]interface{}{
					field: map[string]interface{}{
						"value":            pattern,
						"case_insensitive": true,
					},
				},
			})
		}
		boolQuery["should"] = should
		boolQuery["minimum_should_match"] = 1
	}

	if query.Genre != "" {
		boolQuery["filter"] = []map[string]interface{}{
			{"term": map[string]interface{}{"genre": query.Genre}},
		}
	}

	esQuery := map[string]interface{}{"match_all": map[string]interface{}{}}
	if len(boolQuery) > 0 {
		esQuery = map[string]interface{}{"bool": boolQuery}
	}

	body := map[string]interface{}{
		"query": esQuery,
		"sort": []map[string]interface{}{
			{"created_at": map[string]interface{}{"order": "desc"}},
		},
		"from": query.Offset,
		"size": query.Limit,
	}

	return json.Marshal(body)
}

// escapeWildcard 转义用户输入中的通配符
func escapeWildcard(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "*", `\*`)
	s = strings.ReplaceAll(s, "?", `\?`)
	return s
}

// SyncVideoToES 将单个视频同步到 ES，消费端按视频事件调用
func (s *SearchService) SyncVideoToES(ctx context.Context, videoID int64) error {
	video, err := s.videos.GetByIDWithCreator(videoID)
	if err != nil {
		return err
	}

	agg, err := s.ratings.AverageByVideo(videoID)
	if err != nil {
		return err
	}

	doc := infraES.VideoToDoc(video, video.Creator.UserName, agg.Average, agg.Total)
	return infraES.SyncVideo(ctx, doc)
}

// SyncAllToES 全量同步视频到 ES，worker 启动时做一次初始同步
func (s *SearchService) SyncAllToES(ctx context.Context) error {
	const batchSize = 200

	start := time.Now()
	total := 0

	for offset := 0; ; offset += batchSize {
		videos, _, err := s.videos.ListVideos(offset, batchSize, nil, nil, true)
		if err != nil {
			return err
		}
		if len(videos) == 0 {
			break
		}

		ids := make([]int64, 0, len(videos))
		for i := range videos {
			ids = append(ids, videos[i].ID)
		}
		aggs, err := s.ratings.AverageByVideos(ids)
		if err != nil {
			return err
		}

		docs := make([]*infraES.ESVideoDoc, 0, len(videos))
		for i := range videos {
			agg := aggs[videos[i].ID]
			docs = append(docs, infraES.VideoToDoc(&videos[i], videos[i].Creator.UserName, agg.Average, agg.Total))
		}

		if _, _, err := infraES.BulkSyncVideos(ctx, docs); err != nil {
			return err
		}
		total += len(docs)

		if len(videos) < batchSize {
			break
		}
	}

	logger.Info("Full ES sync completed", zap.Int("total", total), zap.Duration("elapsed", time.Since(start)))
	return nil
}
