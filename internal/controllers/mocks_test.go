package controllers

import (
	"context"

	"schedly-be/internal/entities"
	"schedly-be/internal/models"
)

type mockUserService struct {
	registerFn func(req *models.CreateUserRequest) (*entities.User, error)
	loginFn    func(req *models.LoginRequest) (string, error)
	getByIDFn  func(id int64) (*entities.User, error)
}

func (m *mockUserService) Register(req *models.CreateUserRequest) (*entities.User, error) {
	return m.registerFn(req)
}

func (m *mockUserService) Login(req *models.LoginRequest) (string, error) {
	return m.loginFn(req)
}

func (m *mockUserService) GetByID(id int64) (*entities.User, error) {
	return m.getByIDFn(id)
}

type mockScheduleService struct {
	createFn            func(req *models.CreateScheduleRequest) (*models.ScheduleResponse, error)
	getByUserIDFn       func(userID int64) ([]*models.ScheduleResponse, error)
	getWithActivitiesFn func(scheduleID int64) (*models.ScheduleWithActivitiesResponse, error)
}

func (m *mockScheduleService) Create(req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	return m.createFn(req)
}

func (m *mockScheduleService) GetByUserID(userID int64) ([]*models.ScheduleResponse, error) {
	return m.getByUserIDFn(userID)
}

func (m *mockScheduleService) GetWithActivities(scheduleID int64) (*models.ScheduleWithActivitiesResponse, error) {
	return m.getWithActivitiesFn(scheduleID)
}

type mockActivityService struct {
	createFn          func(req *models.CreateActivityRequest) (*entities.Activity, error)
	createBulkFn      func(ctx context.Context, req *models.BulkCreateActivitiesRequest) error
	getByScheduleIDFn func(scheduleID int64, page, limit int) ([]*entities.Activity, error)
}

func (m *mockActivityService) Create(req *models.CreateActivityRequest) (*entities.Activity, error) {
	return m.createFn(req)
}

func (m *mockActivityService) CreateBulk(ctx context.Context, req *models.BulkCreateActivitiesRequest) error {
	return m.createBulkFn(ctx, req)
}

func (m *mockActivityService) GetByScheduleID(scheduleID int64, page, limit int) ([]*entities.Activity, error) {
	return m.getByScheduleIDFn(scheduleID, page, limit)
}
