package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(req dto.RegisterDTO) (*dto.UserResponseDTO, error)
	Login(req dto.LoginDTO) (*dto.TokenResponseDTO, error)
	GetUser(id uint) (*dto.UserResponseDTO, error)
	GetAllUsers() ([]dto.UserResponseDTO, error)
	UpdateUser(id uint, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewUserService(userRepo repository.UserRepository, tokens TokenService) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) Register(req dto.RegisterDTO) (*dto.UserResponseDTO, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *userService) Login(req dto.LoginDTO) (*dto.TokenResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	var userResp dto.UserResponseDTO
	copier.Copy(&userResp, user)
	return &dto.TokenResponseDTO{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        userResp,
	}, nil
}

func (s *userService) GetUser(id uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user %d: %w", id, err)
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]dto.UserResponseDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	dtos := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		var resp dto.UserResponseDTO
		copier.Copy(&resp, &user)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *userService) UpdateUser(id uint, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user %d: %w", id, err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("database error updating user %d: %w", id, err)
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	return &resp, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("error fetching user %d: %w", id, err)
	}
	return s.userRepo.Delete(id)
}
