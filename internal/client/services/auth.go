package services

import (
	"context"
	"fmt"

	"github.com/dprasetya/storyline/internal/client/api"
	"github.com/dprasetya/storyline/internal/client/creds"
)

// AuthService handles login, registration, and logout. The bearer token is
// process-wide: set once on successful login, cleared on logout, and read
// from the credential store by every remote call. Login has no offline
// fallback; its errors surface to the caller.
type AuthService interface {
	Login(ctx context.Context, email, password string) (name string, err error)
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	DisplayName() string
}

type authService struct {
	client    api.Client
	credStore creds.Store
}

// NewAuthService constructs an AuthService bound to the API client and
// credential store.
func NewAuthService(client api.Client, credStore creds.Store) AuthService {
	return &authService{client: client, credStore: credStore}
}

func (a *authService) Login(ctx context.Context, email, password string) (string, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	if err := a.credStore.Set(creds.KeyToken, res.Token); err != nil {
		return "", fmt.Errorf("failed to store credential: %w", err)
	}
	if err := a.credStore.Set(creds.KeyName, res.Name); err != nil {
		return "", fmt.Errorf("failed to store display name: %w", err)
	}
	return res.Name, nil
}

func (a *authService) Register(ctx context.Context, name, email, password string) error {
	return a.client.Register(ctx, name, email, password)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.credStore.Clear()
}

func (a *authService) IsAuthenticated() bool {
	return a.credStore.Get(creds.KeyToken) != ""
}

func (a *authService) DisplayName() string {
	return a.credStore.Get(creds.KeyName)
}
