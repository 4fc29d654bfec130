package service

import (
	"errors"

	"artroad/config"
	"artroad/internal/auth"
	"artroad/internal/models"
	"artroad/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCreds = errors.New("invalid email or password")

type AuthService struct {
	cfg       *config.Config
	adminRepo *repository.AdminUserRepository
}

func NewAuthService(cfg *config.Config, adminRepo *repository.AdminUserRepository) *AuthService {
	return &AuthService{cfg: cfg, adminRepo: adminRepo}
}

// Login checks admin credentials and issues an access/refresh token pair.
func (s *AuthService) Login(email, password string) (*models.AdminUser, string, string, error) {
	u, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	id, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", err
	}
	u, err := s.adminRepo.GetByID(id)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
}
