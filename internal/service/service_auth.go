// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/store"
	"github.com/MKhiriev/go-house-builder/models"
)

// emailPattern accepts anything starting like something@something.something.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

const looseEmailTag = "looseemail"

// registerForm and loginForm carry the trimmed input through validation.
type registerForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// authService is the concrete implementation of [AuthService].
// It validates sign-up input, hashes passwords with bcrypt and checks
// credentials against the [store.UserRepository].
type authService struct {
	userRepository    store.UserRepository
	passwordMinLength int
	validate          *validator.Validate
	bcryptCost        int

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository.
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.ServerApp, logger *logger.Logger) (AuthService, error) {
	v, err := newAuthValidator(looseEmailTag)
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository:    userRepository,
		passwordMinLength: cfg.PasswordMinLength,
		validate:          v,
		bcryptCost:        bcrypt.DefaultCost,
		logger:            logger,
	}, nil
}

func newAuthValidator(emailTag string) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation(emailTag, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("error registering email validation: %w", err)
	}

	return v, nil
}

// Register checks, in order: all fields present, email format, password
// length, password confirmation, email uniqueness. It returns the stored user.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	form := registerForm{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Password:        strings.TrimSpace(req.Password),
		ConfirmPassword: strings.TrimSpace(req.ConfirmPassword),
	}

	if err := a.validate.Struct(form); err != nil {
		return models.User{}, ErrMissingFields
	}
	if err := a.validate.Var(form.Email, looseEmailTag); err != nil {
		return models.User{}, ErrInvalidEmail
	}
	if len(form.Password) < a.passwordMinLength {
		return models.User{}, fmt.Errorf("%w: at least %d characters", ErrPasswordTooShort, a.passwordMinLength)
	}
	if form.Password != form.ConfirmPassword {
		return models.User{}, ErrPasswordsMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		FullName:     form.Name,
		Email:        form.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailTaken
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login returns the user whose email and password match. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	form := loginForm{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: strings.TrimSpace(req.Password),
	}
	if err := a.validate.Struct(form); err != nil {
		return models.User{}, ErrMissingFields
	}

	user, err := a.userRepository.FindUserByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}
