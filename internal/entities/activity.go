package entities

import "time"

// Activity represents a time-boxed entry belonging to a schedule
type Activity struct {
	ID         int64     `json:"id"`
	ScheduleID int64     `json:"schedule_id"`
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}
