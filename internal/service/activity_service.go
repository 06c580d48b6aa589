package service

import (
	"context"

	"schedly-be/internal/cache"
	"schedly-be/internal/entities"
	"schedly-be/internal/models"
	"schedly-be/internal/repository"
)

// ActivityService defines the interface for activity business logic
type ActivityService interface {
	Create(req *models.CreateActivityRequest) (*entities.Activity, error)
	CreateBulk(ctx context.Context, req *models.BulkCreateActivitiesRequest) error
	GetByScheduleID(scheduleID int64, page, limit int) ([]*entities.Activity, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
	cache        cache.Cache
	ctx          context.Context
}

// NewActivityService creates a new activity service. cacheClient may be nil.
func NewActivityService(activityRepo repository.ActivityRepository, cacheClient cache.Cache) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		cache:        cacheClient,
		ctx:          context.Background(),
	}
}

// Create persists a single activity under its schedule
func (s *activityService) Create(req *models.CreateActivityRequest) (*entities.Activity, error) {
	activity, err := s.activityRepo.Create(req.ScheduleID, req.Name, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	s.invalidateSchedule(req.ScheduleID)
	return activity, nil
}

// CreateBulk persists all requested activities atomically: either every
// descriptor is inserted, in request order, or none of them are.
func (s *activityService) CreateBulk(ctx context.Context, req *models.BulkCreateActivitiesRequest) error {
	activities := make([]entities.Activity, 0, len(req.Activities))
	for _, input := range req.Activities {
		activities = append(activities, entities.Activity{
			Name:      input.Name,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
		})
	}

	if err := s.activityRepo.CreateBulk(ctx, req.ScheduleID, activities); err != nil {
		return err
	}

	s.invalidateSchedule(req.ScheduleID)
	return nil
}

// GetByScheduleID returns a page of activities for a schedule
func (s *activityService) GetByScheduleID(scheduleID int64, page, limit int) ([]*entities.Activity, error) {
	return s.activityRepo.FindByScheduleID(scheduleID, page, limit)
}

// invalidateSchedule drops the schedule's cached combined view after a write
func (s *activityService) invalidateSchedule(scheduleID int64) {
	if s.cache != nil {
		_ = s.cache.Delete(s.ctx, scheduleCacheKey(scheduleID))
	}
}
