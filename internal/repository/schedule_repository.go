package repository

import (
	"database/sql"
	"fmt"

	"schedly-be/internal/entities"
)

// ScheduleRepository defines the interface for schedule database operations
type ScheduleRepository interface {
	Create(userID int64, name string, imageURL *string) (*entities.Schedule, error)
	FindByID(id int64) (*entities.Schedule, error)
	FindByUserID(userID int64) ([]*entities.Schedule, error)
}

type scheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Create inserts a new schedule into the database
func (r *scheduleRepository) Create(userID int64, name string, imageURL *string) (*entities.Schedule, error) {
	query := `
		INSERT INTO schedules (user_id, name, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, image_url, created_at
	`

	var schedule entities.Schedule
	err := r.db.QueryRow(query, userID, name, imageURL).Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Name,
		&schedule.ImageURL,
		&schedule.CreatedAt,
	)

	if isPQError(err, pqForeignKeyViolation) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return &schedule, nil
}

// FindByID finds a schedule by ID
func (r *scheduleRepository) FindByID(id int64) (*entities.Schedule, error) {
	query := `
		SELECT id, user_id, name, image_url, created_at
		FROM schedules
		WHERE id = $1
	`

	var schedule entities.Schedule
	err := r.db.QueryRow(query, id).Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Name,
		&schedule.ImageURL,
		&schedule.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}

	return &schedule, nil
}

// FindByUserID retrieves all schedules owned by a user
func (r *scheduleRepository) FindByUserID(userID int64) ([]*entities.Schedule, error) {
	query := `
		SELECT id, user_id, name, image_url, created_at
		FROM schedules
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*entities.Schedule
	for rows.Next() {
		var schedule entities.Schedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.UserID,
			&schedule.Name,
			&schedule.ImageURL,
			&schedule.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, &schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}

	return schedules, nil
}
