package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth registers users and issues access tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
	tokenTTL  time.Duration
}

// NewAuthService creates an Auth service issuing tokens valid for one day.
func NewAuthService(ur i.UserRepo, t i.Tokenizer, logger i.Logger) (*Auth, error) {
	if ur == nil || t == nil || logger == nil {
		return nil, errors.New("auth service: nil dependency")
	}
	return &Auth{
		userRepo:  ur,
		tokenizer: t,
		logger:    logger,
		tokenTTL:  defaultTokenTTL,
	}, nil
}

// Register creates a new user account.
func (a *Auth) Register(username, password string) error {
	userConfig := domain.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := domain.NewUser(userConfig)
	if err != nil {
		return err
	}

	if err := a.userRepo.Save(user); err != nil {
		a.logger.Error(fmt.Sprintf("saving user %s: %s", username, err))
		return err
	}

	a.logger.Info(fmt.Sprintf("registered user %s (%s)", username, user.ID))
	return nil
}

// SignIn verifies the credentials and returns the user with a signed token.
func (a *Auth) SignIn(username, password string) (*domain.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]any{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, a.tokenTTL)
	if err != nil {
		a.logger.Error(fmt.Sprintf("signing token for %s: %s", username, err))
		return nil, "", err
	}

	return user, token, nil
}
