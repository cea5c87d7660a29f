package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ankietdev/api/config"
	"github.com/ankietdev/api/internal/apperr"
	"github.com/ankietdev/api/internal/dto"
	"github.com/ankietdev/api/internal/model"
	"github.com/ankietdev/api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type AuthService interface {
	Register(email, password string) (*dto.UserResponse, error)
	Login(email, password string) (string, *dto.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(email, password string) (*dto.UserResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.Validationf("email and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, apperr.Validationf("password must be at least %d characters", minPasswordLength)
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		log.Error().Err(err).Msg("Failed to check for existing user")
		return nil, fmt.Errorf("database error checking email: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{Email: email, Password: string(hash)}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Msg("Failed to create user")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}
	return &dto.UserResponse{ID: user.ID, Email: user.Email}, nil
}

// Login deliberately reports one indistinct error for unknown email and wrong
// password.
func (s *authService) Login(email, password string) (string, *dto.UserResponse, error) {
	email = strings.TrimSpace(email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		log.Error().Err(err).Msg("Failed to look up user for login")
		return "", nil, fmt.Errorf("database error loading user: %w", err)
	}
	if user == nil {
		return "", nil, apperr.Unauthorized("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("invalid email or password")
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to sign token")
		return "", nil, fmt.Errorf("error signing token: %w", err)
	}
	return token, &dto.UserResponse{ID: user.ID, Email: user.Email}, nil
}

func (s *authService) signToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.TTLHours) * time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
}
