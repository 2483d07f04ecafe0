package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/wpwhiz/signalwire-woo/internal/model"
	"gorm.io/gorm"
)

var ErrDeliveryNotFound = errors.New("DELIVERY_NOT_FOUND")
var ErrDeliveryDuplicate = errors.New("DELIVERY_DUPLICATE")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *model.Delivery) error
	Update(ctx context.Context, delivery *model.Delivery) error
	UpdateForSending(ctx context.Context, delivery *model.Delivery, staleThreshold time.Time) error
	GetByID(id int64) (*model.Delivery, error)
	FindUnpublishedFailed(limit int) ([]model.Delivery, error)
}

type Delivery struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &Delivery{db: db}
}

func (d *Delivery) Create(ctx context.Context, delivery *model.Delivery) error {
	db := GetTx(ctx, d.db)
	err := db.Create(delivery).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrDeliveryDuplicate
	}

	return err
}

func (d *Delivery) Update(ctx context.Context, delivery *model.Delivery) error {
	db := GetTx(ctx, d.db)
	return db.Model(delivery).Where("id = ?", delivery.ID).Updates(delivery).Error
}

// UpdateForSending claims the row for one sender: it only matches rows still
// in a sendable state or stuck in SENDING past the stale threshold.
func (d *Delivery) UpdateForSending(ctx context.Context, delivery *model.Delivery, staleThreshold time.Time) error {
	db := GetTx(ctx, d.db)
	result := db.Model(delivery).Where("id = ? AND (status IN (?, ?) OR (status = ? AND last_attempt_at < ?))",
		delivery.ID,
		model.DeliveryStatusCreated,
		model.DeliveryStatusFailedTemp,
		model.DeliveryStatusSending,
		staleThreshold).Updates(delivery)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (d *Delivery) GetByID(id int64) (*model.Delivery, error) {
	var delivery model.Delivery

	err := d.db.Where("id = ?", id).First(&delivery).Error
	if err == nil {
		return &delivery, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeliveryNotFound
	}

	return nil, err
}

func (d *Delivery) FindUnpublishedFailed(limit int) ([]model.Delivery, error) {
	var deliveries []model.Delivery

	err := d.db.Where("status = ? AND published = ?", model.DeliveryStatusFailedTemp, false).
		Order("id ASC").
		Limit(limit).
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}

	return deliveries, nil
}
