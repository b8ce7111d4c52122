package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/hash"
	"github.com/craftroots/marketplace/internal/models"
	"github.com/craftroots/marketplace/internal/repo"
	"github.com/craftroots/marketplace/internal/transport"
)

const accessTokenTTL = 24 * time.Hour

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	email := NormalizeEmail(req.Email)

	if _, err := s.Repo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues an HS256 access token carrying the
// user id and role.
func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (string, *models.User, error) {
	user, err := s.Repo.FindUserByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
		}
		return "", nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}

	token, err := SignAccessToken(user.ID, user.Role, s.JWTSecret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func SignAccessToken(userID uint, role string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}
