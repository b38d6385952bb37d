package backend

import (
	"context"

	"github.com/lyra-school/lyra-web/internal/app/models"
)

// DashboardService wraps the /dashboard endpoints.
type DashboardService struct {
	client *Client
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(client *Client) *DashboardService {
	return &DashboardService{client: client}
}

// Stats returns the aggregate entity counts.
func (s *DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.client.Get(ctx, "/dashboard/stats", nil, &stats)
	return stats, err
}

// UpcomingLessons returns the next scheduled lessons for the caller.
func (s *DashboardService) UpcomingLessons(ctx context.Context) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := s.client.Get(ctx, "/dashboard/upcoming-lessons", nil, &lessons)
	return lessons, err
}

// Alerts returns the backend-computed alerts for the caller.
func (s *DashboardService) Alerts(ctx context.Context) ([]models.DashboardAlert, error) {
	var alerts []models.DashboardAlert
	err := s.client.Get(ctx, "/dashboard/alerts", nil, &alerts)
	return alerts, err
}

// Activities returns the caller's recent activity feed.
func (s *DashboardService) Activities(ctx context.Context) ([]models.DashboardActivity, error) {
	var activities []models.DashboardActivity
	err := s.client.Get(ctx, "/dashboard/activities", nil, &activities)
	return activities, err
}
