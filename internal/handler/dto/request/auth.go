package request

import (
	"storefront/internal/usecase/commands"
)

// SignupRequest and LoginRequest are defined in the commands package to avoid
// an import cycle (this package imports commands for the cart and pending
// ToInput conversions); the aliases keep the handler-facing names unchanged.
type SignupRequest = commands.SignupRequest

type LoginRequest = commands.LoginRequest

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
