package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"
	"foodconnect-backend/internal/utils"
	"foodconnect-backend/internal/utils/mailing"
	"foodconnect-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.TokenResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	res := domain.UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
	if user.CampusID != nil {
		res.CampusID = user.CampusID.String()
	}
	return res
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.TokenResponse, error) {
	existing, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.TokenResponse{}, err
	}
	if existing != nil {
		return domain.TokenResponse{}, domain.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.TokenResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = entities.RoleConsumer
	}

	user := &entities.User{
		ID:             uuid.New(),
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: string(hashed),
		Role:           role,
	}
	if req.CampusID != "" {
		campusUUID, err := uuid.Parse(req.CampusID)
		if err != nil {
			return domain.TokenResponse{}, domain.ErrParseUUID
		}
		user.CampusID = &campusUUID
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.TokenResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error) {
	user, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TokenResponse{}, domain.ErrInvalidCredentials
		}
		return domain.TokenResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		return domain.TokenResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenVerifyEmail(user.Email, 24*time.Hour)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/api/v1/auth/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please verify your FoodConnect account by clicking <a href=%q>this link</a>. The link expires in 24 hours.</p>",
		user.FullName, verifyLink,
	)

	return mailing.SendMail(user.Email, "Verify your FoodConnect account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	email, err := s.jwtService.ValidateTokenVerifyEmail(token)
	if err != nil {
		return err
	}

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.Update(ctx, user)
}
