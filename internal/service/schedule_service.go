package service

import (
	"context"
	"fmt"
	"time"

	"schedly-be/internal/cache"
	"schedly-be/internal/models"
	"schedly-be/internal/repository"
)

const scheduleCacheTTL = 5 * time.Minute

// scheduleCacheKey is the cache key for a schedule's combined view
func scheduleCacheKey(scheduleID int64) string {
	return fmt.Sprintf("schedule:activities:%d", scheduleID)
}

// ScheduleService defines the interface for schedule business logic. All
// reads go through the DTO mapping in models; raw rows never leave this
// layer.
type ScheduleService interface {
	Create(req *models.CreateScheduleRequest) (*models.ScheduleResponse, error)
	GetByUserID(userID int64) ([]*models.ScheduleResponse, error)
	GetWithActivities(scheduleID int64) (*models.ScheduleWithActivitiesResponse, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	activityRepo repository.ActivityRepository
	cache        cache.Cache
	ctx          context.Context
}

// NewScheduleService creates a new schedule service. cacheClient may be nil,
// in which case all reads go straight to the database.
func NewScheduleService(scheduleRepo repository.ScheduleRepository, activityRepo repository.ActivityRepository, cacheClient cache.Cache) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		activityRepo: activityRepo,
		cache:        cacheClient,
		ctx:          context.Background(),
	}
}

// Create persists a new schedule for its owner and returns its DTO
func (s *scheduleService) Create(req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.Create(req.UserID, req.Name, req.ImageURL)
	if err != nil {
		return nil, err
	}

	return models.NewScheduleResponse(schedule), nil
}

// GetByUserID returns DTOs for all schedules owned by a user
func (s *scheduleService) GetByUserID(userID int64) ([]*models.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, models.NewScheduleResponse(schedule))
	}

	return responses, nil
}

// GetWithActivities returns the combined schedule-with-activities DTO,
// served from cache when possible
func (s *scheduleService) GetWithActivities(scheduleID int64) (*models.ScheduleWithActivitiesResponse, error) {
	if s.cache != nil {
		var cached models.ScheduleWithActivitiesResponse
		if err := s.cache.GetJSON(s.ctx, scheduleCacheKey(scheduleID), &cached); err == nil {
			return &cached, nil
		}
	}

	schedule, err := s.scheduleRepo.FindByID(scheduleID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.FindAllByScheduleID(scheduleID)
	if err != nil {
		return nil, err
	}

	response := models.NewScheduleWithActivitiesResponse(schedule, activities)

	if s.cache != nil {
		// Best effort; a cache write failure never fails the read
		_ = s.cache.SetJSON(s.ctx, scheduleCacheKey(scheduleID), response, scheduleCacheTTL)
	}

	return response, nil
}
