package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
	apperrors "github.com/hirewire/hirewire/pkg/errors"
)

// SignupInput carries the fields accepted by account registration.
type SignupInput struct {
	Email    string
	Password string
	Type     string
	Name     string
}

// AuthService manages the per-role account collections. Credentials are kept
// in plaintext on purpose: this mirrors the documented storage contract and
// is not to be hardened here.
type AuthService struct {
	store *store.Store
}

// NewAuthService constructs an AuthService.
func NewAuthService(st *store.Store) (*AuthService, error) {
	if st == nil {
		return nil, errors.New("auth service: store is required")
	}
	return &AuthService{store: st}, nil
}

// Signup registers a new account in the collection matching its role.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*models.PublicUser, error) {
	role := strings.ToLower(strings.TrimSpace(input.Type))
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequest("Invalid user type")
	}
	if input.Email == "" || input.Password == "" {
		return nil, apperrors.NewBadRequest("Email and password are required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = emailLocalPart(input.Email)
	}

	collection := roleCollection(role)

	var users []models.User
	if err := s.store.Load(collection, &users); err != nil {
		return nil, fmt.Errorf("auth service: load accounts: %w", err)
	}

	for _, existing := range users {
		if existing.Email == input.Email {
			return nil, apperrors.NewBadRequest("Email already exists")
		}
	}

	users = append(users, models.User{
		Email:    input.Email,
		Password: input.Password,
		Type:     role,
		Name:     name,
	})

	if err := s.store.Save(collection, users); err != nil {
		return nil, fmt.Errorf("auth service: save account: %w", err)
	}

	return &models.PublicUser{Email: input.Email, Type: role, Name: name}, nil
}

// Login checks the submitted credentials against the role's collection.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (*models.PublicUser, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequest("Invalid user type")
	}
	if email == "" || password == "" {
		return nil, apperrors.NewBadRequest("Email and password are required")
	}

	var users []models.User
	if err := s.store.Load(roleCollection(role), &users); err != nil {
		return nil, fmt.Errorf("auth service: load accounts: %w", err)
	}

	for _, existing := range users {
		if existing.Email == email && existing.Password == password {
			name := existing.Name
			if name == "" {
				name = emailLocalPart(existing.Email)
			}
			return &models.PublicUser{Email: existing.Email, Type: role, Name: name}, nil
		}
	}

	return nil, apperrors.ErrUnauthorized
}

// UserExists reports whether an account with the email exists for the role.
func (s *AuthService) UserExists(ctx context.Context, email, role string) (bool, error) {
	var users []models.User
	if err := s.store.Load(roleCollection(role), &users); err != nil {
		return false, fmt.Errorf("auth service: load accounts: %w", err)
	}
	for _, existing := range users {
		if existing.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func roleCollection(role string) string {
	if role == models.RoleCompany {
		return store.Companies
	}
	return store.Candidates
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
