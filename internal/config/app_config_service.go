package config

import (
	"errors"

	"ai-cofounder/internal/features/config/domain"
)

// AppConfigService exposes the effective configuration without secrets.
type AppConfigService interface {
	LoadAppConfig() (*domain.AppConfig, error)
}

// appConfigService is the implementation of AppConfigService.
type appConfigService struct {
	cfg *Config
}

// NewAppConfigService creates a new instance of appConfigService.
func NewAppConfigService(cfg *Config) AppConfigService {
	return &appConfigService{cfg: cfg}
}

// LoadAppConfig returns a snapshot of the resolved configuration. The API key
// is never part of the snapshot.
func (s *appConfigService) LoadAppConfig() (*domain.AppConfig, error) {
	if s.cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	return &domain.AppConfig{
		Provider: s.cfg.Provider,
		ModelParams: domain.ModelParams{
			Model:       s.cfg.Model,
			Temperature: s.cfg.Temperature,
			MaxTokens:   s.cfg.MaxTokens,
		},
		Host:              s.cfg.Host,
		Ports:             append([]int(nil), s.cfg.Ports...),
		GenerationTimeout: s.cfg.GenerationTimeout.String(),
		OpenBrowser:       s.cfg.OpenBrowser,
	}, nil
}
