package memory

import (
	"context"
	"sort"

	"studel/internal/core/domain/model/user"
	"studel/internal/core/ports"
	"studel/internal/pkg/errs"
)

var _ ports.UserRepository = &UserRepository{}

type UserRepository struct {
	access access
}

func (r *UserRepository) Add(_ context.Context, u *user.User) error {
	if u == nil {
		return errs.NewValueIsRequiredError("user")
	}
	row := userRowOf(u)
	return r.access.write(func(s *state) error {
		if _, ok := s.users[row.id]; ok {
			return errs.NewStateConflictError("user", row.id, "already exists")
		}
		for _, existing := range s.users {
			if existing.phone == row.phone {
				return errs.NewStateConflictError("user", row.id, "phone is already registered")
			}
		}
		s.users[row.id] = row
		return nil
	})
}

func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	if u == nil {
		return errs.NewValueIsRequiredError("user")
	}
	row := userRowOf(u)
	return r.access.write(func(s *state) error {
		if _, ok := s.users[row.id]; !ok {
			return errs.NewObjectNotFoundError("user", row.id)
		}
		s.users[row.id] = row
		return nil
	})
}

func (r *UserRepository) Get(_ context.Context, id string) (*user.User, error) {
	var row userRow
	err := r.access.read(func(s *state) error {
		found, ok := s.users[id]
		if !ok {
			return errs.NewObjectNotFoundError("user", id)
		}
		row = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.restore()
}

func (r *UserRepository) GetByPhone(_ context.Context, phone string) (*user.User, error) {
	var (
		row   userRow
		found bool
	)
	_ = r.access.read(func(s *state) error {
		for _, existing := range s.users {
			if existing.phone == phone {
				row, found = existing, true
				return nil
			}
		}
		return nil
	})
	if !found {
		return nil, errs.NewObjectNotFoundError("user with phone", phone)
	}
	return row.restore()
}

func (r *UserRepository) ListByRole(_ context.Context, role user.Role) ([]*user.User, error) {
	var rows []userRow
	_ = r.access.read(func(s *state) error {
		for _, row := range s.users {
			if row.role == role {
				rows = append(rows, row)
			}
		}
		return nil
	})
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].name != rows[j].name {
			return rows[i].name < rows[j].name
		}
		return rows[i].id < rows[j].id
	})

	users := make([]*user.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.restore()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
