package i

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
)

// Authenticator registers users and signs them in.
type Authenticator interface {
	Register(username, password string) error

	// SignIn checks the credentials and returns the user with a signed access token.
	SignIn(username, password string) (*domain.User, string, error)
}

// Tokenizer signs and verifies access tokens.
type Tokenizer interface {
	// Generate creates a token carrying claims that expires after expTime.
	Generate(claims map[string]any, expTime time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]any, error)
}
