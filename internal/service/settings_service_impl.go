package service

import (
	"context"
	"errors"
	"time"

	"github.com/leten02/TimeGrid/internal/domain"
	"github.com/leten02/TimeGrid/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	defaults domain.Settings
}

// NewSettingsService returns a service that reports defaults until the
// first Update is stored.
func NewSettingsService(settings repository.SettingsRepo, defaults domain.Settings) SettingsService {
	return &settingsService{settings: settings, defaults: defaults}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		d := s.defaults
		return &d, nil
	}
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *settingsService) Update(ctx context.Context, st *domain.Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	st.UpdatedAt = time.Now().UTC()
	return s.settings.Upsert(ctx, st)
}
