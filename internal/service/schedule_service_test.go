package service

import (
	"encoding/json"
	"testing"
	"time"

	"schedly-be/internal/entities"
	"schedly-be/internal/models"
	"schedly-be/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleReturnsDTO(t *testing.T) {
	imageURL := "http://example.com/image.jpg"
	created := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockScheduleRepo{
		createFn: func(userID int64, name string, image *string) (*entities.Schedule, error) {
			return &entities.Schedule{ID: 9, UserID: userID, Name: name, ImageURL: image, CreatedAt: created}, nil
		},
	}
	svc := NewScheduleService(repo, &mockActivityRepo{}, nil)

	resp, err := svc.Create(&models.CreateScheduleRequest{
		UserID:   1,
		Name:     "Test Schedule",
		ImageURL: &imageURL,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, "Test Schedule", resp.Name)

	// Storage column names must not leak through the DTO
	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"imageUrl"`)
	assert.Contains(t, string(body), `"createdAt"`)
	assert.NotContains(t, string(body), "image_url")
	assert.NotContains(t, string(body), "created_at")
	assert.NotContains(t, string(body), "user_id")
}

func TestGetWithActivitiesEmptyIsArray(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		findByIDFn: func(id int64) (*entities.Schedule, error) {
			return &entities.Schedule{ID: id, Name: "Empty"}, nil
		},
	}
	activityRepo := &mockActivityRepo{
		findAllByScheduleIDFn: func(scheduleID int64) ([]*entities.Activity, error) {
			return nil, nil
		},
	}
	svc := NewScheduleService(scheduleRepo, activityRepo, nil)

	resp, err := svc.GetWithActivities(3)
	require.NoError(t, err)
	require.NotNil(t, resp.Activities)
	assert.Len(t, resp.Activities, 0)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"activities":[]`)
}

func TestGetWithActivitiesMapsColumns(t *testing.T) {
	start := time.Date(2024, 10, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	scheduleRepo := &mockScheduleRepo{
		findByIDFn: func(id int64) (*entities.Schedule, error) {
			return &entities.Schedule{ID: id, Name: "Day plan"}, nil
		},
	}
	activityRepo := &mockActivityRepo{
		findAllByScheduleIDFn: func(scheduleID int64) ([]*entities.Activity, error) {
			return []*entities.Activity{
				{ID: 1, ScheduleID: scheduleID, Name: "Standup", StartDate: start, EndDate: end},
			}, nil
		},
	}
	svc := NewScheduleService(scheduleRepo, activityRepo, nil)

	resp, err := svc.GetWithActivities(3)
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	assert.Equal(t, "Standup", resp.Activities[0].Name)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"startDate"`)
	assert.Contains(t, string(body), `"endDate"`)
	assert.NotContains(t, string(body), "start_date")
	assert.NotContains(t, string(body), "end_date")
}

func TestGetWithActivitiesNotFound(t *testing.T) {
	scheduleRepo := &mockScheduleRepo{
		findByIDFn: func(id int64) (*entities.Schedule, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewScheduleService(scheduleRepo, &mockActivityRepo{}, nil)

	_, err := svc.GetWithActivities(404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetWithActivitiesServedFromCache(t *testing.T) {
	calls := 0
	scheduleRepo := &mockScheduleRepo{
		findByIDFn: func(id int64) (*entities.Schedule, error) {
			calls++
			return &entities.Schedule{ID: id, Name: "Cached"}, nil
		},
	}
	activityRepo := &mockActivityRepo{
		findAllByScheduleIDFn: func(scheduleID int64) ([]*entities.Activity, error) {
			return nil, nil
		},
	}
	svc := NewScheduleService(scheduleRepo, activityRepo, newFakeCache())

	_, err := svc.GetWithActivities(3)
	require.NoError(t, err)
	resp, err := svc.GetWithActivities(3)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Cached", resp.Name)
}
