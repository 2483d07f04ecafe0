package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/wpwhiz/signalwire-woo/internal/model"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) GetByID(id int64) (*model.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}
