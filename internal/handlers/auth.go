package handlers

import (
	"errors"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/rs/zerolog/log"

	"github.com/dimitrije/ticketdesk-api/internal/middleware"
	"github.com/dimitrije/ticketdesk-api/internal/services"
	"github.com/dimitrije/ticketdesk-api/pkg/dto"
)

type AuthHandler struct {
	userService UserServiceInterface
}

func NewAuthHandler(userService UserServiceInterface) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Signup(c *drift.Context) {
	var req dto.SignupRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(400, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	err := h.userService.Signup(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		var (
			vErr *services.ValidationError
			cErr *services.ConflictError
		)
		switch {
		case errors.As(err, &vErr):
			_ = c.JSON(400, dto.MessageResponse{Message: vErr.Message})
		case errors.As(err, &cErr):
			_ = c.JSON(400, dto.MessageResponse{Message: cErr.Message})
		default:
			log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("signup failed")
			c.InternalServerError("failed to register user")
		}
		return
	}

	log.Info().Str("username", req.Username).Msg("user registered")
	_ = c.JSON(201, dto.MessageResponse{Message: "User registered successfully"})
}

func (h *AuthHandler) Login(c *drift.Context) {
	// A body that does not decode into two strings cannot match any user.
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(401, dto.MessageResponse{Message: "Invalid credentials"})
		return
	}

	err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		_ = c.JSON(401, dto.MessageResponse{Message: "Invalid credentials"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("login failed")
		c.InternalServerError("failed to log in")
		return
	}

	_ = c.JSON(200, dto.MessageResponse{Message: "Login successful"})
}
