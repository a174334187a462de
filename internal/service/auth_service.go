package service

import (
	"context"
	"errors"
	"strings"

	"chequesaathi/config"
	"chequesaathi/internal/auth"
	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidCreds = domain.InvalidCredential("Invalid email or password.")

type AuthService struct {
	cfg      *config.JWTConfig
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.JWTConfig, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) issue(u *models.User) (string, error) {
	return auth.GenerateToken(s.cfg, auth.Identity{ID: u.ID, Email: u.Email})
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return nil, "", domain.Validation("Email, password, and name are required.")
	}
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", domain.Conflict("User with this email already exists.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &models.User{Email: email, PasswordHash: string(hash), Name: name}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if isDuplicate(err) {
			return nil, "", domain.Conflict("User with this email already exists.")
		}
		return nil, "", err
	}
	token, err := s.issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domain.Validation("Email and password are required.")
	}
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errInvalidCreds
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", errInvalidCreds
	}
	token, err := s.issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "User")
	}
	return u, nil
}
