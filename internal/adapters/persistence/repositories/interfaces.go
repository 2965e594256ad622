package repositories

import (
	"context"

	"loanguard/internal/adapters/persistence/models"
)

// AdminRepository defines admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// LoanRepository defines loan record data access
type LoanRepository interface {
	Create(ctx context.Context, record *models.LoanRequest) error
	List(ctx context.Context) ([]*models.LoanRequest, error)
	UpdatePartial(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
