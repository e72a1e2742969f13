package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-backend/internal/config"
	"catalog-backend/internal/models"
	"catalog-backend/internal/repository"
	"catalog-backend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on bad login or password. Login and
// password failures are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	CreateUser(ctx context.Context, user *models.User) error
	Login(ctx context.Context, login, password string) (string, *models.UserInfo, error)
	ValidateToken(tokenString string) (string, error)
	GetUserInfo(ctx context.Context, login string) (*models.UserInfo, error)
}

type authService struct {
	repo   repository.UserRepository
	cfg    config.AuthConfig
	logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, cfg config.AuthConfig, logger *logrus.Logger) AuthService {
	return &authService{repo: repo, cfg: cfg, logger: logger}
}

func (s *authService) CreateUser(ctx context.Context, user *models.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.UUID = uuid.NewString()
	user.Password = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}
	s.logger.WithField("login", user.Login).Info("User created")
	return nil
}

func (s *authService) Login(ctx context.Context, login, password string) (string, *models.UserInfo, error) {
	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		var notFound *utils.NotFoundError
		if errors.As(err, &notFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login": user.Login,
		"exp":   time.Now().Add(s.cfg.TokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	info := &models.UserInfo{
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	s.logger.WithField("login", user.Login).Info("User logged in")
	return signed, info, nil
}

// ValidateToken checks the signature and expiry and returns the login
// carried by the token.
func (s *authService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	login, ok := claims["login"].(string)
	if !ok || login == "" {
		return "", ErrInvalidCredentials
	}
	return login, nil
}

func (s *authService) GetUserInfo(ctx context.Context, login string) (*models.UserInfo, error) {
	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	return &models.UserInfo{
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}
