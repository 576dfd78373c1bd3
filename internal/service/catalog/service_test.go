package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-booking-service/internal/domain"
	serviceRepo "github.com/salonbook/salon-booking-service/internal/infra/storage/service"
	"github.com/salonbook/salon-booking-service/internal/service/catalog/models"
	"github.com/salonbook/salon-booking-service/pkg/ptr"
)

// Фейк репозитория услуг для тестов

type fakeServiceRepo struct {
	nextID   int64
	services map[int64]*domain.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[int64]*domain.Service)}
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	f.nextID++
	stored := *svc
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.services[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (f *fakeServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(f.services))
	for id := int64(1); id <= f.nextID; id++ {
		if svc, ok := f.services[id]; ok {
			result = append(result, svc)
		}
	}
	return result, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, id int64, svc *domain.Service) (*domain.Service, error) {
	if _, ok := f.services[id]; !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	stored := *svc
	stored.ID = id
	stored.UpdatedAt = time.Now()
	f.services[id] = &stored
	return &stored, nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
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
	repo := newFakeServiceRepo()
	return NewService(repo, nopLogger{}), repo
}

func createRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:            "Corte de pelo",
		Description:     "Corte y peinado",
		PriceLabel:      "Desde 12€",
		DurationMinutes: 30,
	}
}

func TestCreate_Success(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Corte de pelo", resp.Name)
	assert.Equal(t, "Desde 12€", resp.PriceLabel)
	assert.Equal(t, 30, resp.DurationMinutes)
	require.Len(t, repo.services, 1)
}

func TestCreate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateServiceRequest)
	}{
		{
			name:   "empty name",
			mutate: func(req *models.CreateServiceRequest) { req.Name = "  " },
		},
		{
			name:   "empty price label",
			mutate: func(req *models.CreateServiceRequest) { req.PriceLabel = "" },
		},
		{
			name:   "duration too short",
			mutate: func(req *models.CreateServiceRequest) { req.DurationMinutes = domain.MinServiceDurationMinutes - 1 },
		},
		{
			name:   "duration too long",
			mutate: func(req *models.CreateServiceRequest) { req.DurationMinutes = domain.MaxServiceDurationMinutes + 1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			req := createRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.services)
		})
	}
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	svc, _ := newTestService()

	first := createRequest()
	_, err := svc.Create(context.Background(), first)
	require.NoError(t, err)

	second := createRequest()
	second.Name = "Tinte"
	second.DurationMinutes = 90
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Corte de pelo", resp.Services[0].Name)
	assert.Equal(t, "Tinte", resp.Services[1].Name)
}

func TestUpdate_PartialPatch(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	// Меняем только длительность, остальные поля сохраняются
	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		DurationMinutes: ptr.Ptr(45),
	})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Corte de pelo", resp.Name)
	assert.Equal(t, "Desde 12€", resp.PriceLabel)
}

func TestUpdate_InvalidPatchRejected(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		Name: ptr.Ptr(""),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Услуга осталась неизменной
	assert.Equal(t, "Corte de pelo", repo.services[created.ID].Name)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 99, &models.UpdateServiceRequest{
		DurationMinutes: ptr.Ptr(45),
	})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.services)

	err = svc.Delete(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrServiceNotFound)
}
