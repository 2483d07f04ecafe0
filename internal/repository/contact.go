package repository

import (
	"context"
	"errors"
	"time"

	"github.com/wpwhiz/signalwire-woo/internal/model"
	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("CONTACT_NOT_FOUND")

type ContactRepository interface {
	GetByID(id int64) (*model.Contact, error)
	// FindByPhone matches the stored billing phone exactly. Callers strip the
	// "+1" prefix first; numbers are stored in national form.
	FindByPhone(phone string) (*model.Contact, error)
	SetSubscription(ctx context.Context, contactID int64, subscribed bool) error
}

type Contact struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &Contact{db: db}
}

func (c *Contact) GetByID(id int64) (*model.Contact, error) {
	var contact model.Contact

	err := c.db.Where("id = ?", id).First(&contact).Error
	if err == nil {
		return &contact, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContactNotFound
	}

	return nil, err
}

func (c *Contact) FindByPhone(phone string) (*model.Contact, error) {
	var contact model.Contact

	// Multiple contacts can share a billing phone; take the first in stable
	// id order, no deduplication here.
	err := c.db.Where("billing_phone = ?", phone).Order("id ASC").First(&contact).Error
	if err == nil {
		return &contact, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContactNotFound
	}

	return nil, err
}

func (c *Contact) SetSubscription(ctx context.Context, contactID int64, subscribed bool) error {
	db := GetTx(ctx, c.db)

	result := db.Model(&model.Contact{}).
		Where("id = ?", contactID).
		Updates(map[string]interface{}{
			"sms_order_notifications": subscribed,
			"updated_at":              time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}

	return nil
}
