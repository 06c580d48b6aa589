package models

import "time"

// CreateActivityRequest represents the request body for creating an activity
type CreateActivityRequest struct {
	ScheduleID int64     `json:"scheduleId" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
}

// ActivityInput describes one activity inside a bulk create request
type ActivityInput struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// BulkCreateActivitiesRequest represents the request body for creating
// multiple activities atomically
type BulkCreateActivitiesRequest struct {
	ScheduleID int64           `json:"scheduleId" binding:"required"`
	Activities []ActivityInput `json:"activities" binding:"required,min=1,dive"`
}
