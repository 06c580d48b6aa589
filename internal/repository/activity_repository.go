package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"schedly-be/internal/entities"
)

// ActivityRepository defines the interface for activity database operations
type ActivityRepository interface {
	Create(scheduleID int64, name string, startDate, endDate time.Time) (*entities.Activity, error)
	CreateBulk(ctx context.Context, scheduleID int64, activities []entities.Activity) error
	FindByScheduleID(scheduleID int64, page, limit int) ([]*entities.Activity, error)
	FindAllByScheduleID(scheduleID int64) ([]*entities.Activity, error)
}

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create inserts a new activity into the database
func (r *activityRepository) Create(scheduleID int64, name string, startDate, endDate time.Time) (*entities.Activity, error) {
	query := `
		INSERT INTO activities (schedule_id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, schedule_id, name, start_date, end_date
	`

	var activity entities.Activity
	err := r.db.QueryRow(query, scheduleID, name, startDate.UTC(), endDate.UTC()).Scan(
		&activity.ID,
		&activity.ScheduleID,
		&activity.Name,
		&activity.StartDate,
		&activity.EndDate,
	)

	if isPQError(err, pqForeignKeyViolation) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return &activity, nil
}

// CreateBulk inserts all activities as children of the given schedule in a
// single transaction, or inserts none of them. A dedicated connection is
// held for the full operation so no other caller can interleave statements
// within the transaction, and it is released on every exit path.
//
// The schedule is not checked for existence up front; a foreign key
// violation on any insert is the signal that it is missing.
func (r *activityRepository) CreateBulk(ctx context.Context, scheduleID int64, activities []entities.Activity) error {
	query := `
		INSERT INTO activities (schedule_id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4)
	`

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Insert in caller-supplied order
	for _, activity := range activities {
		if _, err := tx.ExecContext(ctx, query, scheduleID, activity.Name, activity.StartDate.UTC(), activity.EndDate.UTC()); err != nil {
			tx.Rollback()
			if isPQError(err, pqForeignKeyViolation) {
				return ErrScheduleNotFound
			}
			return fmt.Errorf("failed to create activities: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activities: %w", err)
	}

	return nil
}

// FindByScheduleID retrieves a page of activities for a schedule
func (r *activityRepository) FindByScheduleID(scheduleID int64, page, limit int) ([]*entities.Activity, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := `
		SELECT id, schedule_id, name, start_date, end_date
		FROM activities
		WHERE schedule_id = $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3
	`

	return r.queryActivities(query, scheduleID, limit, offset)
}

// FindAllByScheduleID retrieves every activity for a schedule
func (r *activityRepository) FindAllByScheduleID(scheduleID int64) ([]*entities.Activity, error) {
	query := `
		SELECT id, schedule_id, name, start_date, end_date
		FROM activities
		WHERE schedule_id = $1
		ORDER BY id ASC
	`

	return r.queryActivities(query, scheduleID)
}

func (r *activityRepository) queryActivities(query string, args ...interface{}) ([]*entities.Activity, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	defer rows.Close()

	var activities []*entities.Activity
	for rows.Next() {
		var activity entities.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.ScheduleID,
			&activity.Name,
			&activity.StartDate,
			&activity.EndDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &activity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}
