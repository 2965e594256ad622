package repositories

import (
	"context"

	"loanguard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository interface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create creates a new loan record
func (r *loanRepository) Create(ctx context.Context, record *models.LoanRequest) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// List returns all loan records
func (r *loanRepository) List(ctx context.Context) ([]*models.LoanRequest, error) {
	// Pre-allocated so an empty table serializes as [] rather than null.
	records := make([]*models.LoanRequest, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// UpdatePartial applies the given fields to the record with the given id
// and returns the number of affected rows (0 when the id is unknown).
func (r *loanRepository) UpdatePartial(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		// Nothing to change; report whether the record exists at all.
		var count int64
		err := r.db.WithContext(ctx).Model(&models.LoanRequest{}).Where("id = ?", id).Count(&count).Error
		return count, err
	}

	result := r.db.WithContext(ctx).Model(&models.LoanRequest{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes the record with the given id and returns the number of
// affected rows (0 when the id is unknown).
func (r *loanRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.LoanRequest{}, id)
	return result.RowsAffected, result.Error
}
