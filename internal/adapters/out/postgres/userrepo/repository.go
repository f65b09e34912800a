package userrepo

import (
	"context"
	"errors"
	"fmt"

	"blip/internal/core/domain/model/user"
	"blip/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
// The core only reads from it during login; Add serves seeding and tests.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user account and returns the stored record with the
// database-assigned identifier.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) (*user.User, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0 // let the database assign the identifier
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by exact email match.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundErrorWithCause(
				"user not found",
				fmt.Errorf("no user with email %q", email),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}
