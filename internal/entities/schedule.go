package entities

import "time"

// Schedule represents a user-owned schedule in the database
type Schedule struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url,omitempty"` // Pointer allows nil (no image)
	CreatedAt time.Time `json:"created_at"`
}
