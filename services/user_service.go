package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dcode-github/dream_nest/models"
	"github.com/dcode-github/dream_nest/repositories"
	"github.com/dcode-github/dream_nest/utils"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error)
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if existing != nil {
		log.Printf("User email already exists: %s", req.Email)
		return nil, &repositories.ConflictError{Entity: "user", Field: "email"}
	}
	var notFound *repositories.NotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Password:         hashed,
		ProfileImagePath: req.ProfileImagePath,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	if err := validateStruct(req); err != nil {
		return "", nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		var notFound *repositories.NotFoundError
		if errors.As(err, &notFound) {
			log.Printf("User not found: %s", req.Email)
			return "", nil, repositories.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		log.Printf("Invalid credentials for user: %s", req.Email)
		return "", nil, repositories.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex())
	if err != nil {
		return "", nil, fmt.Errorf("error generating token: %w", err)
	}
	return token, user, nil
}
