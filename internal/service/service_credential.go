// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/internal/validators"
	"github.com/MKhiriev/go-linkup/models"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for every stored password.
const PasswordHashCost = 10

// dummyPassword is hashed once at start-up. Logins for unknown accounts
// are compared against it so they cost as much as a wrong password.
const dummyPassword = "go-linkup/unknown-account"

// credentialService is the concrete implementation of CredentialService.
type credentialService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            IDGenerator

	hashCost  int
	dummyHash []byte
	now       func() time.Time

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService hashing passwords with
// bcrypt at [PasswordHashCost].
func NewCredentialService(userRepository store.UserRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) CredentialService {
	return newCredentialService(userRepository, validator, ids, PasswordHashCost, logger)
}

func newCredentialService(userRepository store.UserRepository, validator validators.Validator, ids IDGenerator, hashCost int, logger *logger.Logger) *credentialService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), hashCost)
	if err != nil {
		// only an out-of-range cost fails here
		panic(fmt.Sprintf("bcrypt: %v", err))
	}

	return &credentialService{
		userRepository: userRepository,
		validator:      validator,
		ids:            ids,
		hashCost:       hashCost,
		dummyHash:      dummyHash,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Name, username and email are trimmed and the email is lowercased before
// validation and persistence. A taken username or email is reported as
// store.ErrUsernameAlreadyExists or store.ErrEmailAlreadyExists.
func (c *credentialService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := c.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration request")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	req.Email = strings.ToLower(req.Email)

	if err := c.userRepository.FindCollision(ctx, req.Username, req.Email); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("account collision")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), c.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	now := c.now().UTC()
	user, err := c.userRepository.CreateUser(ctx, models.User{
		ID:           c.ids.Generate(),
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Profile:      models.NewProfile(),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Verify checks a login attempt. Email takes precedence over username when
// both are given.
func (c *credentialService) Verify(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var (
		user models.User
		err  error
	)
	if email := strings.TrimSpace(req.Email); email != "" {
		user, err = c.userRepository.FindUserByEmail(ctx, strings.ToLower(email))
	} else {
		user, err = c.userRepository.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		_ = bcrypt.CompareHashAndPassword(c.dummyHash, []byte(req.Password))
		log.Info().Str("email", req.Email).Str("username", req.Username).Msg("login for unknown account")
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("user search failed")
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Lookup returns the stored user with userID, or store.ErrUserNotFound.
func (c *credentialService) Lookup(ctx context.Context, userID string) (models.User, error) {
	return c.userRepository.FindUserByID(ctx, userID)
}
