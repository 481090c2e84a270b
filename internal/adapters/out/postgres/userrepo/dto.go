// Package userrepo persists platform accounts with GORM.
package userrepo

import (
	"studel/internal/core/domain/model/user"
)

// UserDTO is the users table row. Phone numbers are unique.
type UserDTO struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"not null;index"`
	Email      string
	Phone      string `gorm:"not null;uniqueIndex"`
	Role       string `gorm:"not null;index"`
	CampusID   string
	VendorID   string
	IsApproved bool `gorm:"not null;default:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:         u.ID(),
		Name:       u.Name(),
		Email:      u.Email(),
		Phone:      u.Phone(),
		Role:       u.Role().String(),
		CampusID:   u.CampusID(),
		VendorID:   u.VendorID(),
		IsApproved: u.IsApproved(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(dto.ID, dto.Name, dto.Email, dto.Phone, role, dto.CampusID, dto.VendorID, dto.IsApproved)
}
