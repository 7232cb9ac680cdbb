package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/dimitrije/ticketdesk-api/internal/models"
	"github.com/dimitrije/ticketdesk-api/internal/store"
)

// signupInput is checked field by field in declaration order; the first
// failing field decides the message.
type signupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"min=3"`
	Password string `json:"password" validate:"min=6"`
}

var signupMessages = map[string]string{
	"email":    "Invalid email",
	"username": "Username must be at least 3 characters long",
	"password": "Password must be at least 6 characters long",
}

type UserService struct {
	store    store.Store
	validate *validator.Validate
}

func NewUserService(s store.Store) *UserService {
	return &UserService{
		store:    s,
		validate: newValidator(),
	}
}

// Signup registers a new user. Rules are checked in order and the first
// failure is returned.
func (s *UserService) Signup(ctx context.Context, email, username, password string) error {
	in := signupInput{Email: email, Username: username, Password: password}
	if err := s.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		return &ValidationError{Message: signupMessages[fieldErrs[0].Field()]}
	}

	return s.store.Update(ctx, func(doc *models.Document) error {
		for _, u := range doc.Users {
			if u.Email == email || u.Username == username {
				return &ConflictError{Message: "User already exists"}
			}
		}

		doc.Users = append(doc.Users, models.User{
			Email:    email,
			Username: username,
			Password: password,
		})
		return nil
	})
}

// Login checks the credentials against the stored users. Nothing is
// issued on success.
func (s *UserService) Login(ctx context.Context, username, password string) error {
	found := false
	err := s.store.View(ctx, func(doc *models.Document) error {
		for _, u := range doc.Users {
			if u.Username == username && u.Password == password {
				found = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrInvalidCredentials
	}
	return nil
}
