package models

// CreateScheduleRequest represents the request body for creating a schedule
type CreateScheduleRequest struct {
	UserID   int64   `json:"userId" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	ImageURL *string `json:"imageUrl,omitempty"`
}
