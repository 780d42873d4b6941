package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/service"
	"github.com/m04kA/SMC-CleaningService/internal/service/catalog/models"
	"github.com/m04kA/SMC-CleaningService/pkg/ptr"
)

type fakeServiceRepo struct {
	services  map[int64]*domain.Service
	deleteErr error
	nextID    int64
}

func (f *fakeServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	f.nextID++
	copied := *s
	copied.ID = f.nextID
	f.services[copied.ID] = &copied
	return &copied, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeServiceRepo) List(_ context.Context, includeInactive bool) ([]*domain.Service, error) {
	var result []*domain.Service
	for _, s := range f.services {
		if !includeInactive && !s.Active {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, s *domain.Service) error {
	if _, ok := f.services[s.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	copied := *s
	f.services[s.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeServiceRepo) {
	repo := &fakeServiceRepo{services: map[int64]*domain.Service{}}
	return NewService(repo, nopLogger{}), repo
}

func validCreateRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:            "Генеральная уборка",
		Description:     "Полная уборка квартиры",
		BasePrice:       5000,
		DurationMinutes: 120,
		Category:        "general",
	}
}

func TestCreate_NewServiceIsActive(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.Equal(t, "Генеральная уборка", resp.Name)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*models.CreateServiceRequest)
	}{
		{"empty name", func(r *models.CreateServiceRequest) { r.Name = "" }},
		{"negative price", func(r *models.CreateServiceRequest) { r.BasePrice = -1 }},
		{"zero duration", func(r *models.CreateServiceRequest) { r.DurationMinutes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_HidesInactiveByDefault(t *testing.T) {
	svc, repo := newTestService()
	repo.services[1] = &domain.Service{ID: 1, Name: "A", BasePrice: 100, DurationMinutes: 60, Active: true}
	repo.services[2] = &domain.Service{ID: 2, Name: "B", BasePrice: 200, DurationMinutes: 60, Active: false}

	resp, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, repo := newTestService()
	repo.services[1] = &domain.Service{
		ID: 1, Name: "Уборка", Description: "desc", BasePrice: 5000,
		DurationMinutes: 120, Category: "general", Active: true,
	}

	resp, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		BasePrice: ptr.Ptr(6000.0),
		Active:    ptr.Ptr(false),
	})
	require.NoError(t, err)

	// Изменились только переданные поля
	assert.Equal(t, 6000.0, resp.BasePrice)
	assert.False(t, resp.Active)
	assert.Equal(t, "Уборка", resp.Name)
	assert.Equal(t, 120, resp.DurationMinutes)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 42, &models.UpdateServiceRequest{})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_RejectsInvalidResult(t *testing.T) {
	svc, repo := newTestService()
	repo.services[1] = &domain.Service{ID: 1, Name: "Уборка", BasePrice: 5000, DurationMinutes: 120, Active: true}

	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{Name: ptr.Ptr("")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_InUse(t *testing.T) {
	repo := &fakeServiceRepo{services: map[int64]*domain.Service{}, deleteErr: serviceRepo.ErrServiceInUse}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrServiceInUse)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
