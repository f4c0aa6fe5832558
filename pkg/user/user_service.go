package user

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"food-expiry-tracker/domain"
	"food-expiry-tracker/entities"
	"food-expiry-tracker/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
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

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if !domain.PhonePattern.MatchString(phone) {
		return domain.RegisterResponse{}, domain.ErrInvalidPhoneFormat
	}
	if !isStrongPassword(req.Password) {
		return domain.RegisterResponse{}, domain.ErrWeakPassword
	}

	if _, err := s.userRepository.GetUserByPhone(ctx, phone); err == nil {
		return domain.RegisterResponse{}, domain.ErrPhoneAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		Name:     strings.TrimSpace(req.Name),
		Phone:    phone,
		Password: string(hashed),
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{ID: user.ID, Name: user.Name, Phone: user.Phone}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if !domain.PhonePattern.MatchString(phone) {
		return domain.LoginResponse{}, domain.ErrInvalidPhoneFormat
	}

	user, err := s.userRepository.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrUserNotFound
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrIncorrectPassword
	}

	token := s.jwtService.GenerateTokenUser(strconv.FormatUint(uint64(user.ID), 10), domain.RoleUser)
	return domain.LoginResponse{UserID: user.ID, Name: user.Name, Token: token}, nil
}

// isStrongPassword enforces at least 6 characters with one uppercase letter,
// one lowercase letter, one digit and one special character.
func isStrongPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
