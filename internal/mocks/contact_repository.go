package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/internal/model"
)

type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) GetByID(id int64) (*model.Contact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *ContactRepository) FindByPhone(phone string) (*model.Contact, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *ContactRepository) SetSubscription(ctx context.Context, contactID int64, subscribed bool) error {
	args := m.Called(ctx, contactID, subscribed)
	return args.Error(0)
}
