package repository

import (
	"errors"

	"github.com/wpwhiz/signalwire-woo/internal/model"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("ORDER_NOT_FOUND")

type OrderRepository interface {
	GetByID(id int64) (*model.Order, error)
}

type Order struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &Order{db: db}
}

func (o *Order) GetByID(id int64) (*model.Order, error) {
	var order model.Order

	err := o.db.Where("id = ?", id).First(&order).Error
	if err == nil {
		return &order, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}

	return nil, err
}
