package models

import (
	"time"

	"schedly-be/internal/entities"
)

// ScheduleResponse is the API-facing shape of a schedule. Storage column
// naming (image_url, created_at) never crosses this boundary.
type ScheduleResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityItem is the API-facing shape of an activity inside a schedule view
type ActivityItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ScheduleWithActivitiesResponse combines a schedule with its activities
type ScheduleWithActivitiesResponse struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	ImageURL   *string        `json:"imageUrl"`
	CreatedAt  time.Time      `json:"createdAt"`
	Activities []ActivityItem `json:"activities"`
}

// NewScheduleResponse maps a schedule row to its DTO
func NewScheduleResponse(schedule *entities.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:        schedule.ID,
		Name:      schedule.Name,
		ImageURL:  schedule.ImageURL,
		CreatedAt: schedule.CreatedAt,
	}
}

// NewScheduleWithActivitiesResponse maps a schedule row and its activity rows
// to the combined DTO. The activities field is always an array, never null.
func NewScheduleWithActivitiesResponse(schedule *entities.Schedule, activities []*entities.Activity) *ScheduleWithActivitiesResponse {
	items := make([]ActivityItem, 0, len(activities))
	for _, activity := range activities {
		items = append(items, ActivityItem{
			ID:        activity.ID,
			Name:      activity.Name,
			StartDate: activity.StartDate,
			EndDate:   activity.EndDate,
		})
	}

	return &ScheduleWithActivitiesResponse{
		ID:         schedule.ID,
		Name:       schedule.Name,
		ImageURL:   schedule.ImageURL,
		CreatedAt:  schedule.CreatedAt,
		Activities: items,
	}
}
