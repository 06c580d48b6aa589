package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"schedly-be/internal/entities"
)

type mockUserRepo struct {
	createFn      func(name, email, passwordHash string) (*entities.User, error)
	findByIDFn    func(id int64) (*entities.User, error)
	findByEmailFn func(email string) (*entities.User, error)
}

func (m *mockUserRepo) Create(name, email, passwordHash string) (*entities.User, error) {
	return m.createFn(name, email, passwordHash)
}

func (m *mockUserRepo) FindByID(id int64) (*entities.User, error) {
	return m.findByIDFn(id)
}

func (m *mockUserRepo) FindByEmail(email string) (*entities.User, error) {
	return m.findByEmailFn(email)
}

type mockScheduleRepo struct {
	createFn       func(userID int64, name string, imageURL *string) (*entities.Schedule, error)
	findByIDFn     func(id int64) (*entities.Schedule, error)
	findByUserIDFn func(userID int64) ([]*entities.Schedule, error)
}

func (m *mockScheduleRepo) Create(userID int64, name string, imageURL *string) (*entities.Schedule, error) {
	return m.createFn(userID, name, imageURL)
}

func (m *mockScheduleRepo) FindByID(id int64) (*entities.Schedule, error) {
	return m.findByIDFn(id)
}

func (m *mockScheduleRepo) FindByUserID(userID int64) ([]*entities.Schedule, error) {
	return m.findByUserIDFn(userID)
}

type mockActivityRepo struct {
	createFn              func(scheduleID int64, name string, startDate, endDate time.Time) (*entities.Activity, error)
	createBulkFn          func(ctx context.Context, scheduleID int64, activities []entities.Activity) error
	findByScheduleIDFn    func(scheduleID int64, page, limit int) ([]*entities.Activity, error)
	findAllByScheduleIDFn func(scheduleID int64) ([]*entities.Activity, error)
}

func (m *mockActivityRepo) Create(scheduleID int64, name string, startDate, endDate time.Time) (*entities.Activity, error) {
	return m.createFn(scheduleID, name, startDate, endDate)
}

func (m *mockActivityRepo) CreateBulk(ctx context.Context, scheduleID int64, activities []entities.Activity) error {
	return m.createBulkFn(ctx, scheduleID, activities)
}

func (m *mockActivityRepo) FindByScheduleID(scheduleID int64, page, limit int) ([]*entities.Activity, error) {
	return m.findByScheduleIDFn(scheduleID, page, limit)
}

func (m *mockActivityRepo) FindAllByScheduleID(scheduleID int64) ([]*entities.Activity, error) {
	return m.findAllByScheduleIDFn(scheduleID)
}

// fakeCache is an in-memory Cache for tests
type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	val, ok := f.data[key]
	if !ok {
		return "", fmt.Errorf("key not found")
	}
	return val, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(data)
	return nil
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := f.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}
