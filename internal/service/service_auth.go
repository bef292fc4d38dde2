// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces the stored credential and verifies login attempts.
	hasher CredentialHasher

	// validator rejects blank usernames and passwords before storage is touched.
	validator validators.Validator

	// decoy is a stored credential no password matches. Login compares
	// against it for unknown usernames so both failure paths cost the same.
	decoy string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository. The returned
// service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher CredentialHasher, logger *logger.Logger) AuthService {
	decoy, err := hasher.Hash(decoyPassword)
	if err != nil {
		logger.Err(err).Msg("failed to prepare decoy credential")
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewTodoValidator(),
		decoy:          decoy,
		logger:         logger,
	}
}

// decoyPassword seeds authService.decoy. The plain scheme stores it as is,
// so it must never be a usable password; it fails validation by being blank
// after trimming.
const decoyPassword = " \t "

// Register creates a new identity.
//
// The username lookup before the insert only gives a fast answer for the
// common case. Two concurrent registrations of the same name both pass it;
// the unique index then rejects one of them and that rejection is reported as
// [ErrUsernameTaken] as well.
//
// Returns:
//   - [ErrEmptyCredentials] if the username or password is blank.
//   - [ErrPasswordTooLong] if the hasher cannot accept the password.
//   - [ErrUsernameTaken] if the username exists.
//   - [ErrDatabase] on any storage failure.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid credentials provided for registration")
		return ErrEmptyCredentials
	}
	if err := a.hasher.Accepts(credentials.Password); err != nil {
		log.Debug().Err(err).Msg("password rejected by credential scheme")
		return err
	}

	_, err := a.userRepository.ResolveUserID(ctx, credentials.Username)
	switch {
	case err == nil:
		log.Debug().Str("username", credentials.Username).Msg("username already taken")
		return ErrUsernameTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		return storageError(ctx, "register.resolve", err)
	}

	stored, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return err
		}
		log.Err(err).Msg("failed to hash password")
		return ErrInternal
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username: credentials.Username,
		Password: stored,
	})
	if err != nil {
		return storageError(ctx, "register.create", err)
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return nil
}

// Login checks credentials against the stored identity.
//
// An unknown username and a wrong password produce the same
// [ErrInvalidCredentials], so callers cannot tell which usernames exist.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid credentials provided for login")
		return ErrEmptyCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.Compare(a.decoy, credentials.Password)
		log.Debug().Str("username", credentials.Username).Msg("login for unknown username")
		return ErrInvalidCredentials
	}
	if err != nil {
		return storageError(ctx, "login.find", err)
	}

	if !a.hasher.Compare(user.Password, credentials.Password) {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return ErrInvalidCredentials
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return nil
}
