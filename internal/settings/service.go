package settings

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrSymbolRequired = errors.New("currency symbol is required")
	ErrSymbolTooLong  = errors.New("currency symbol must be at most 8 characters")
)

// Service handles business logic for settings
type Service struct {
	repo *Repository
}

// NewService creates a new settings service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the current settings
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

// Update validates and stores new settings
func (s *Service) Update(ctx context.Context, settings *Settings) (*Settings, error) {
	settings.CurrencySymbol = strings.TrimSpace(settings.CurrencySymbol)
	if settings.CurrencySymbol == "" {
		return nil, ErrSymbolRequired
	}
	if len([]rune(settings.CurrencySymbol)) > 8 {
		return nil, ErrSymbolTooLong
	}
	return s.repo.Update(ctx, settings)
}
