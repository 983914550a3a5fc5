package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atomwalk/hrm-client/internal/adapter"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/store"
	"github.com/atomwalk/hrm-client/models"
)

type profileService struct {
	localStore *store.ClientStorages
	adapter    adapter.BackendAdapter

	logger *logger.Logger
}

// NewProfileService constructs the [ProfileService] backed by the backend
// profile endpoint and the local settings cache.
func NewProfileService(localStore *store.ClientStorages, backendAdapter adapter.BackendAdapter, logger *logger.Logger) ProfileService {
	return &profileService{localStore: localStore, adapter: backendAdapter, logger: logger}
}

func (p *profileService) FetchProfile(ctx context.Context) (models.Profile, error) {
	profile, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return models.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}

	encoded, err := json.Marshal(profile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("encode profile: %w", err)
	}

	if err = p.localStore.Settings.Set(ctx, store.KeyProfile, string(encoded)); err != nil {
		return models.Profile{}, fmt.Errorf("cache profile: %w", err)
	}
	if err = p.localStore.Settings.Set(ctx, store.KeyProfileName, profile.DisplayName()); err != nil {
		return models.Profile{}, fmt.Errorf("cache profile name: %w", err)
	}

	p.logger.Debug().Str("emp_id", profile.EmpData.EmpID).Msg("profile cached")
	return profile, nil
}

func (p *profileService) CachedProfile(ctx context.Context) (models.Profile, error) {
	encoded, err := p.localStore.Settings.Get(ctx, store.KeyProfile)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return models.Profile{}, ErrNoStoredCredential
		}
		return models.Profile{}, fmt.Errorf("read cached profile: %w", err)
	}

	var profile models.Profile
	if err = json.Unmarshal([]byte(encoded), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode cached profile: %w", err)
	}

	return profile, nil
}

func (p *profileService) CachedProfileName(ctx context.Context) string {
	name, err := p.localStore.Settings.Get(ctx, store.KeyProfileName)
	if err != nil {
		return ""
	}
	return name
}

func (p *profileService) IsManager(ctx context.Context) bool {
	profile, err := p.CachedProfile(ctx)
	return err == nil && profile.UserGroup.IsManager
}
