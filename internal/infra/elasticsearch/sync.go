package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shermian8845-code/Videoshare/internal/model"
	"github.com/shermian8845-code/Videoshare/pkg/logger"

	"go.uber.org/zap"
)

// ESVideoDoc ES 视频文档结构
type ESVideoDoc struct {
	ID            int64   `json:"id"`
	CreatorID     int64   `json:"creator_id"`
	CreatorName   string  `json:"creator_name"`
	Title         string  `json:"title"`
	Publisher     string  `json:"publisher"`
	Producer      string  `json:"producer"`
	Genre         string  `json:"genre"`
	AgeRating     string  `json:"age_rating"`
	Description   string  `json:"description"`
	Duration      int     `json:"duration"`
	Views         int64   `json:"views"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// VideoToDoc 将视频和评分聚合转换为 ES 文档
func VideoToDoc(v *model.Video, creatorName string, avgRating float64, totalRatings int64) *ESVideoDoc {
	return &ESVideoDoc{
		ID:            v.ID,
		CreatorID:     v.CreatorID,
		CreatorName:   creatorName,
		Title:         v.Title,
		Publisher:     v.Publisher,
		Producer:      v.Producer,
		Genre:         v.Genre,
		AgeRating:     v.AgeRating,
		Description:   v.Description,
		Duration:      v.Duration,
		Views:         v.Views,
		AverageRating: avgRating,
		TotalRatings:  totalRatings,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.Format(time.RFC3339),
	}
}

// SyncVideo 同步单个视频文档到 ES
func SyncVideo(ctx context.Context, doc *ESVideoDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, VideosIndexName(), fmt.Sprintf("%d", doc.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.Int64("video_id", doc.ID))
	return nil
}

// DeleteVideoDoc 从 ES 删除视频文档
func DeleteVideoDoc(ctx context.Context, videoID int64) error {
	resp, err := Delete(ctx, VideosIndexName(), fmt.Sprintf("%d", videoID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkSyncVideos 批量同步视频文档到 ES
func BulkSyncVideos(ctx context.Context, docs []*ESVideoDoc) (success, failed int, err error) {
	indexName := VideosIndexName()

	var buf strings.Builder
	for _, doc := range docs {
		docBody, _ := json.Marshal(doc)

		buf.WriteString(fmt.Sprintf(`{"index":{"_index":"%s","_id":"%d"}}`, indexName, doc.ID))
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return 0, 0, nil
	}

	resp, err := Bulk(ctx, strings.NewReader(buf.String()))
	if err != nil {
		return 0, len(docs), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(docs), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(docs), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}
