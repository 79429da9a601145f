package service

import (
	"context"
	"fmt"

	"threadboard/internal/model"
	"threadboard/internal/repository"
)

// topN is how many posts/users the analytics endpoint reports.
const topN = 5

// AnalyticsService aggregates the derived counters at read time. Nothing is
// materialized or cached.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// Overview returns the global counters plus the top-5 posts and users by
// non-deleted comment count.
func (s *AnalyticsService) Overview(ctx context.Context) (*model.CommentAnalytics, error) {
	counters, err := s.analyticsRepo.Counters(ctx)
	if err != nil {
		return nil, fmt.Errorf("counters: %w", err)
	}
	topPosts, err := s.analyticsRepo.TopPostsByCommentCount(ctx, topN)
	if err != nil {
		return nil, fmt.Errorf("top posts: %w", err)
	}
	topUsers, err := s.analyticsRepo.TopUsersByCommentCount(ctx, topN)
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}

	return &model.CommentAnalytics{
		CommentCounters: *counters,
		TopPosts:        topPosts,
		TopUsers:        topUsers,
	}, nil
}
