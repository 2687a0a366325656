package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iswarpatel123/braintree-render/internal/model"
)

// ReconciliationRepository journals charges that settled at the gateway but
// whose order document could not be persisted, so support can reconcile them
// by hand.
type ReconciliationRepository interface {
	Create(ctx context.Context, record *model.ReconciliationRecord) error
	ListUnresolved(ctx context.Context) ([]*model.ReconciliationRecord, error)
	MarkResolved(ctx context.Context, id uint) error
}

type reconciliationRepoImpl struct {
	db *gorm.DB
}

func NewReconciliationRepository(db *gorm.DB) ReconciliationRepository {
	return &reconciliationRepoImpl{
		db: db,
	}
}

func (r *reconciliationRepoImpl) Create(ctx context.Context, record *model.ReconciliationRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *reconciliationRepoImpl) ListUnresolved(ctx context.Context) ([]*model.ReconciliationRecord, error) {
	var records []*model.ReconciliationRecord
	err := r.db.WithContext(ctx).
		Where("resolved = ?", false).
		Order("created_at ASC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *reconciliationRepoImpl) MarkResolved(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&model.ReconciliationRecord{}).
		Where("id = ?", id).
		Update("resolved", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
