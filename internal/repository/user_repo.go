package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tender-service/internal/models"
	"tender-service/internal/query"
	"tender-service/internal/tendererrors"
)

// UserByEmail resolves the account behind an authenticated identity.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tendererrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// UserByID returns one user row.
func (s *Store) UserByID(id int64) (*models.User, error) {
	var u models.User
	err := s.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tendererrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// UserEmailTaken reports whether any account uses this email.
func (s *Store) UserEmailTaken(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

// UsernameTaken reports whether any account uses this username.
func (s *Store) UsernameTaken(username string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return count > 0, nil
}

// CreateUser inserts a new account.
func (s *Store) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// SaveUser persists changes to an existing account.
func (s *Store) SaveUser(u *models.User) error {
	if err := s.db.Save(u).Error; err != nil {
		return fmt.Errorf("save user %d: %w", u.ID, err)
	}
	return nil
}

// DeleteUser removes an account row.
func (s *Store) DeleteUser(u *models.User) error {
	if err := s.db.Delete(u).Error; err != nil {
		return fmt.Errorf("delete user %d: %w", u.ID, err)
	}
	return nil
}

// ListUsers runs the admin listing: dynamic field filters, optional role
// membership, pagination and registry-resolved sorting. Roles live in a
// JSON array column, so membership is a quoted-substring match.
func (s *Store) ListUsers(filter query.Filter, role *models.Role, page, size int, sortBy, direction string) ([]models.User, error) {
	dir := "DESC"
	if strings.EqualFold(direction, "asc") {
		dir = "ASC"
	}

	db := filter.Apply(s.db.Model(&models.User{}))
	if role != nil {
		db = db.Where("roles LIKE ?", `%"`+string(*role)+`"%`)
	}

	var users []models.User
	err := db.
		Order(query.UserFields.SortColumn(sortBy) + " " + dir).
		Offset(page * size).
		Limit(size).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
