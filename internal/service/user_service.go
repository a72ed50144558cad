package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/ausawards/admin-api/internal/auth"
	"github.com/ausawards/admin-api/internal/model"
)

// UserStore is the slice of user persistence the user service needs.
type UserStore interface {
	Save(ctx context.Context, u *model.User) error
}

// UserService creates administrator accounts.
type UserService struct {
	hasher auth.Hasher
	users  UserStore
}

func NewUserService(hasher auth.Hasher, users UserStore) *UserService {
	return &UserService{hasher: hasher, users: users}
}

// CreateAdminUser hashes the password and persists a new ADMIN user
// holding the given roles.
func (s *UserService) CreateAdminUser(ctx context.Context, loginID, password string, roleIDs []string) (*model.User, error) {
	log.Printf("users: creating user with loginId=%s", loginID)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Printf("users: failed to hash password: %v", err)
		return nil, err
	}
	user := &model.User{
		ID:           uuid.NewString(),
		UserType:     model.UserTypeAdmin,
		CompanyID:    nil,
		LoginID:      loginID,
		PasswordHash: hash,
		RoleIDs:      roleIDs,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("users: created user id=%s loginId=%s", user.ID, user.LoginID)
	return user, nil
}
