// Package users holds account business logic: registration, self-service
// updates and the admin operations with their ADMIN-tag protections.
package users

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"tender-service/internal/merge"
	"tender-service/internal/models"
	"tender-service/internal/query"
	"tender-service/internal/repository"
	"tender-service/internal/tendererrors"
)

// Hasher hashes passwords before they are persisted. Verification lives in
// the external login service; this side only writes hashes.
type Hasher interface {
	Hash(password string) (string, error)
}

// BcryptHasher is the production Hasher.
type BcryptHasher struct{}

// Hash produces a bcrypt hash at the default cost.
func (BcryptHasher) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Service implements the user operations.
type Service struct {
	store  *repository.Store
	hasher Hasher
}

// NewService wires the user service.
func NewService(store *repository.Store, hasher Hasher) *Service {
	return &Service{store: store, hasher: hasher}
}

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Name     string            `json:"name" binding:"required"`
	Surname  string            `json:"surname" binding:"required"`
	Email    string            `json:"email" binding:"required,email"`
	Username string            `json:"username" binding:"required"`
	Password string            `json:"password" binding:"required"`
	Status   models.UserStatus `json:"status"`
	Roles    models.RoleList   `json:"roles"`
}

// Register creates a new account. Email and username must be free, and the
// ADMIN tag can never be self-assigned.
func (s *Service) Register(req RegisterRequest) (*models.User, error) {
	if taken, err := s.store.UserEmailTaken(req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("%w: email already in use", tendererrors.ErrConflict)
	}

	if taken, err := s.store.UsernameTaken(req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("%w: username already in use", tendererrors.ErrConflict)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	roles := models.RoleList{}
	for _, r := range req.Roles {
		if !models.ValidRole(r) {
			return nil, fmt.Errorf("%w: unknown role %q", tendererrors.ErrInvalidArgument, r)
		}
		if r == models.RoleAdmin {
			continue
		}
		roles = append(roles, r)
	}

	status := req.Status
	if status == "" {
		status = models.UserPending
	}

	user := &models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Username: req.Username,
		Password: hash,
		Status:   status,
		Roles:    roles,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Self returns the caller's own record.
func (s *Service) Self(caller *models.User) *models.User {
	return caller
}

// UpdateSelf applies a sparse patch to the caller's own record. A provided
// password is re-hashed; everything absent stays untouched.
func (s *Service) UpdateSelf(caller *models.User, patch merge.UserPatch) (*models.User, error) {
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	merge.ApplyUserPatch(caller, patch)

	if err := s.store.SaveUser(caller); err != nil {
		return nil, err
	}
	return caller, nil
}

// ListByAdmin runs the admin user listing: dynamic filters plus an optional
// role-membership restriction.
func (s *Service) ListByAdmin(page, size int, sortBy, direction string, params map[string]string, role string) ([]models.User, error) {
	var roleFilter *models.Role
	if role != "" {
		r := models.Role(role)
		if !models.ValidRole(r) {
			return nil, fmt.Errorf("%w: unknown role %q", tendererrors.ErrInvalidArgument, role)
		}
		roleFilter = &r
	}

	filter := query.Build(query.UserFields, params)
	return s.store.ListUsers(filter, roleFilter, page, size, sortBy, direction)
}

// UpdateByAdmin patches a user on an admin's behalf; id 0 means the admin's
// own record. The ADMIN tag is pinned: it can be neither granted nor
// stripped through this path, and another admin's record is untouchable.
func (s *Service) UpdateByAdmin(admin *models.User, id int64, patch merge.UserPatch) (*models.User, error) {
	target := admin
	if id != 0 {
		var err error
		target, err = s.store.UserByID(id)
		if err != nil {
			return nil, err
		}
	}

	requested := append(models.RoleList{}, patch.Roles...)
	for _, r := range requested {
		if !models.ValidRole(r) {
			return nil, fmt.Errorf("%w: unknown role %q", tendererrors.ErrInvalidArgument, r)
		}
	}

	if target.Roles.Has(models.RoleAdmin) {
		if admin.ID != target.ID {
			return nil, fmt.Errorf("%w: cannot modify another admin", tendererrors.ErrAccessDenied)
		}
		if patch.Roles != nil && !requested.Has(models.RoleAdmin) {
			requested = append(requested, models.RoleAdmin)
		}
	} else if patch.Roles != nil {
		kept := models.RoleList{}
		for _, r := range requested {
			if r != models.RoleAdmin {
				kept = append(kept, r)
			}
		}
		requested = kept
	}

	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	merge.ApplyUserPatch(target, patch)
	if patch.Roles != nil {
		target.Roles = requested
	}

	if err := s.store.SaveUser(target); err != nil {
		return nil, err
	}
	return target, nil
}

// DeleteByAdmin removes a non-admin account.
func (s *Service) DeleteByAdmin(id int64) error {
	user, err := s.store.UserByID(id)
	if err != nil {
		return err
	}
	if user.Roles.Has(models.RoleAdmin) {
		return fmt.Errorf("%w: cannot delete an admin", tendererrors.ErrAccessDenied)
	}
	return s.store.DeleteUser(user)
}
