package userrepo

import (
	"context"
	"errors"

	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
	"studel/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.UserRepository = &GormUserRepository{}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts a new account. The unique phone index turns a duplicate
// registration into a StateConflictError even under concurrent sign-ups.
func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("user", dto.ID, "phone or id is already registered", err)
		}
		return err
	}
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).
		Update("is_approved", dto.IsApproved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", dto.ID)
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	return r.first(ctx, "user", id, "id = ?", id)
}

func (r *GormUserRepository) GetByPhone(ctx context.Context, phone string) (*user.User, error) {
	return r.first(ctx, "user with phone", phone, "phone = ?", phone)
}

func (r *GormUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Where("role = ?", role.String()).Order("name").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *GormUserRepository) first(ctx context.Context, what, key string, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(what, key)
		}
		return nil, err
	}
	return toDomain(dto)
}
