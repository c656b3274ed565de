// Package contentsvc - thống kê dashboard theo workspace.
package contentsvc

import (
	"context"

	models "franchise_social/internal/api/content/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LocalStats thống kê dashboard của workspace local
type LocalStats struct {
	DraftCount     int64          `json:"draftCount"`
	ScheduledCount int64          `json:"scheduledCount"`
	PublishedCount int64          `json:"publishedCount"`
	Upcoming       []models.Asset `json:"upcoming"`
	RecentTemplates []models.Asset `json:"recentTemplates"`
}

// NationalStats thống kê dashboard của workspace national
type NationalStats struct {
	TemplateCount   int64          `json:"templateCount"`
	RecentTemplates []models.Asset `json:"recentTemplates"`
}

// GetLocalStats trả về số bài theo trạng thái, 3 bài sắp đăng gần nhất
// và 4 template mới nhất trong thư viện
func (s *AssetService) GetLocalStats(ctx context.Context, workspaceID primitive.ObjectID) (*LocalStats, error) {
	stats := &LocalStats{}

	base := bson.M{"workspaceId": workspaceID, "isNationalTemplate": false}
	for status, target := range map[string]*int64{
		models.StatusDraft:     &stats.DraftCount,
		models.StatusScheduled: &stats.ScheduledCount,
		models.StatusPublished: &stats.PublishedCount,
	} {
		filter := bson.M{"status": status}
		for k, v := range base {
			filter[k] = v
		}
		count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, filter)
		if err != nil {
			return nil, err
		}
		*target = count
	}

	upcomingFilter := bson.M{
		"workspaceId": workspaceID,
		"status":      models.StatusScheduled,
	}
	upcomingOpts := options.Find().SetSort(bson.D{{Key: "scheduledFor", Value: 1}}).SetLimit(3)
	upcoming, err := s.BaseServiceMongoImpl.Find(ctx, upcomingFilter, upcomingOpts)
	if err != nil {
		return nil, err
	}
	stats.Upcoming = upcoming

	recent, err := s.ListLibrary(ctx, 4)
	if err != nil {
		return nil, err
	}
	stats.RecentTemplates = recent

	return stats, nil
}

// GetNationalStats trả về tổng số template và 5 template mới nhất
func (s *AssetService) GetNationalStats(ctx context.Context) (*NationalStats, error) {
	filter := bson.M{"isNationalTemplate": true, "status": models.StatusPublished}
	count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	recent, err := s.ListLibrary(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &NationalStats{TemplateCount: count, RecentTemplates: recent}, nil
}
