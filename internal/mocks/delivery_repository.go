package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/internal/model"
)

type DeliveryRepository struct {
	mock.Mock
}

func (m *DeliveryRepository) Create(ctx context.Context, delivery *model.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

func (m *DeliveryRepository) Update(ctx context.Context, delivery *model.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

func (m *DeliveryRepository) UpdateForSending(ctx context.Context, delivery *model.Delivery, staleThreshold time.Time) error {
	args := m.Called(ctx, delivery, staleThreshold)
	return args.Error(0)
}

func (m *DeliveryRepository) GetByID(id int64) (*model.Delivery, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Delivery), args.Error(1)
}

func (m *DeliveryRepository) FindUnpublishedFailed(limit int) ([]model.Delivery, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Delivery), args.Error(1)
}
