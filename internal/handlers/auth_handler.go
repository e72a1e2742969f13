package handlers

import (
	"errors"
	"strings"

	"catalog-backend/internal/models"
	"catalog-backend/internal/services"
	"catalog-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

type CreateUserRequest struct {
	Login     string `json:"login" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed token plus the public user profile.
type LoginResponse struct {
	Token string          `json:"token"`
	User  models.UserInfo `json:"user"`
}

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// CreateUser godoc
// @Summary Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} utils.APIMessage "User created"
// @Failure 400 {object} utils.APIMessage "Invalid payload"
// @Router /user [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user payload")
	}

	user := &models.User{
		Login:     req.Login,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := h.service.CreateUser(c.Context(), user); err != nil {
		h.logger.WithError(err).Error("Failed to create user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "User successfully created")
}

// Login godoc
// @Summary Authenticate and obtain a token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} LoginResponse
// @Failure 401 {object} utils.APIMessage "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Login and password are required")
	}

	token, info, err := h.service.Login(c.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return respondError(c, h.logger, err)
	}
	return c.JSON(LoginResponse{Token: token, User: *info})
}

// CheckLogin godoc
// @Summary Validate the bearer token
// @Tags auth
// @Success 204 "Token is valid"
// @Failure 401 {object} utils.APIMessage "Invalid or missing token"
// @Router /login [get]
func (h *AuthHandler) CheckLogin(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing bearer token")
	}

	if _, err := h.service.ValidateToken(token); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetUser godoc
// @Summary Get a user profile by login
// @Tags auth
// @Produce json
// @Param username path string true "User login"
// @Success 200 {object} models.UserInfo
// @Failure 404 {object} utils.APIMessage "User not found"
// @Router /users/{username} [get]
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	info, err := h.service.GetUserInfo(c.Context(), c.Params("username"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(info)
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
