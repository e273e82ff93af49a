package usecase

import (
	"storefront/internal/domain/user"
	"storefront/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}

// Verify adapts the validator to the replay coordinator, which only needs the
// "does this token belong to an authenticated user right now" answer.
func (t *tokenValidatorImpl) Verify(tokenString string) (uuid.UUID, error) {
	userID, _, err := t.ValidateToken(tokenString)
	return userID, err
}

// SessionVerifier exposes the access-token predicate used by replay.
type SessionVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

func NewSessionVerifier(jwtService *jwt.Service) SessionVerifier {
	return &tokenValidatorImpl{jwtService: jwtService}
}
