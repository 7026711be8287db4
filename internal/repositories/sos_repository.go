package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type SOSRepository interface {
	CreateContact(ctx context.Context, contact *db_models.EmergencyContact) error
	GetContactById(ctx context.Context, contactId string) (*db_models.EmergencyContact, error)
	ListContactsByAccount(ctx context.Context, accountId string) ([]db_models.EmergencyContact, error)
	DeleteContact(ctx context.Context, contactId, accountId string) (int64, error)
	CreateAlert(ctx context.Context, alert *db_models.SOSAlert) error
}

type sosRepository struct {
	db *gorm.DB
}

func NewSOSRepository(db *gorm.DB) SOSRepository {
	return &sosRepository{db: db}
}

func (r *sosRepository) CreateContact(ctx context.Context, contact *db_models.EmergencyContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *sosRepository) GetContactById(ctx context.Context, contactId string) (*db_models.EmergencyContact, error) {
	var contact db_models.EmergencyContact
	err := r.db.WithContext(ctx).
		Where("id = ?", contactId).
		First(&contact).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &contact, nil
}

func (r *sosRepository) ListContactsByAccount(ctx context.Context, accountId string) ([]db_models.EmergencyContact, error) {
	var contacts []db_models.EmergencyContact
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountId).
		Order("created_at ASC").
		Find(&contacts).Error

	if err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *sosRepository) DeleteContact(ctx context.Context, contactId, accountId string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", contactId, accountId).
		Delete(&db_models.EmergencyContact{})

	return res.RowsAffected, res.Error
}

func (r *sosRepository) CreateAlert(ctx context.Context, alert *db_models.SOSAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}
