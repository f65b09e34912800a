// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"time"

	"blip/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
// Email carries a unique index so the same address cannot register twice.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         int    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
func fromDomain(user *user.User) UserDTO {
	return UserDTO{
		ID:           user.ID(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Role:         int(user.Role()),
	}
}

// toDomain converts a database DTO to a user entity via RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.Email, dto.PasswordHash, user.Role(dto.Role))
}
