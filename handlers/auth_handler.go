package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/PEREIRAD01/backend-Pitstoppro/domain"
	"github.com/PEREIRAD01/backend-Pitstoppro/internal/util"
	"github.com/PEREIRAD01/backend-Pitstoppro/middleware"
	"github.com/PEREIRAD01/backend-Pitstoppro/models"
	"github.com/PEREIRAD01/backend-Pitstoppro/repositories"
)

// AuthHandler handles registration, login and the current-user lookup.
type AuthHandler struct {
	Users     repositories.UserStore
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(users repositories.UserStore, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{Users: users, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

// Passwords are capped at 72 characters, the longest input bcrypt hashes.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"displayName" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidPayload()
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		// The max tag counts runes; multibyte passwords can still exceed
		// bcrypt's 72-byte limit.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.NewValidationError([]domain.FieldError{
				{Path: "password", Message: "must be at most 72 bytes"},
			})
		}
		return err
	}

	user := models.User{
		Email:        strings.ToLower(req.Email),
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
	}
	if err := h.Users.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			return domain.NewConflict("Email already registered")
		}
		return err
	}

	token, err := util.CreateAccessToken(user.ID, h.JWTSecret, h.TokenTTL)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(domain.TokenResponse{Token: token})
}

// Login handles POST /auth/login. Unknown emails and wrong passwords
// produce the same response so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidPayload()
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	user, err := h.Users.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return domain.NewUnauthorized("Invalid credentials")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.NewUnauthorized("Invalid credentials")
	}

	token, err := util.CreateAccessToken(user.ID, h.JWTSecret, h.TokenTTL)
	if err != nil {
		return err
	}
	return c.JSON(domain.TokenResponse{Token: token})
}

// Me handles GET /auth/me. The account may have been removed after the
// token was issued, hence the NotFound path.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.Users.FindByID(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return domain.NewNotFound()
		}
		return err
	}

	return c.JSON(domain.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	})
}
