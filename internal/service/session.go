// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomwalk/hrm-client/internal/adapter"
	"github.com/atomwalk/hrm-client/internal/crypto"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/store"
	"github.com/atomwalk/hrm-client/models"
)

type sessionManager struct {
	localStore *store.ClientStorages
	adapter    adapter.BackendAdapter
	keychain   crypto.KeyChainService

	logger *logger.Logger
}

// NewSessionManager constructs the [SessionManager] owning login state and
// stored credentials.
func NewSessionManager(localStore *store.ClientStorages, backendAdapter adapter.BackendAdapter, keychain crypto.KeyChainService, logger *logger.Logger) SessionManager {
	return &sessionManager{
		localStore: localStore,
		adapter:    backendAdapter,
		keychain:   keychain,
		logger:     logger,
	}
}

func (s *sessionManager) Login(ctx context.Context, userInput, password string) (models.Token, error) {
	username, err := s.resolveUsername(ctx, userInput)
	if err != nil {
		return models.Token{}, err
	}

	token, err := s.adapter.Login(ctx, username, password)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	if err = s.persistCredential(ctx, username, password, token); err != nil {
		return models.Token{}, err
	}

	if err = s.persistCompanyInfo(ctx); err != nil {
		// login succeeded; company metadata is display-only
		s.logger.Warn().Err(err).Msg("company info not cached")
	}

	s.logger.Info().Str("username", username).Msg("logged in")
	return token, nil
}

func (s *sessionManager) SilentLogin(ctx context.Context) (models.Token, error) {
	username, err := s.localStore.Settings.Get(ctx, store.KeyUsername)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return models.Token{}, ErrNoStoredCredential
		}
		return models.Token{}, fmt.Errorf("read stored username: %w", err)
	}

	sealed, err := s.localStore.Settings.Get(ctx, store.KeyPassword)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return models.Token{}, ErrNoStoredCredential
		}
		return models.Token{}, fmt.Errorf("read sealed password: %w", err)
	}

	key, err := s.deviceKey(ctx)
	if err != nil {
		return models.Token{}, err
	}

	password, err := s.keychain.Unseal(sealed, key)
	if err != nil {
		return models.Token{}, fmt.Errorf("unseal stored password: %w", err)
	}

	token, err := s.adapter.Login(ctx, username, password)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	if err = s.localStore.Settings.Set(ctx, store.KeyUserToken, token.Key); err != nil {
		return models.Token{}, fmt.Errorf("persist token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("silent re-login")
	return token, nil
}

func (s *sessionManager) Logout(ctx context.Context) error {
	s.adapter.SetToken("")

	if err := s.localStore.Settings.DeleteAll(ctx); err != nil {
		return fmt.Errorf("wipe local settings: %w", err)
	}

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *sessionManager) StoredUsername(ctx context.Context) (string, error) {
	username, err := s.localStore.Settings.Get(ctx, store.KeyUsername)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return "", ErrNoStoredCredential
		}
		return "", fmt.Errorf("read stored username: %w", err)
	}
	return username, nil
}

func (s *sessionManager) SetPIN(ctx context.Context, pin string) error {
	if !validPin(pin) {
		return ErrInvalidPin
	}

	// a new PIN fully replaces the old one
	if err := s.localStore.Settings.Set(ctx, store.KeyUserPin, pin); err != nil {
		return fmt.Errorf("persist pin: %w", err)
	}

	return nil
}

func (s *sessionManager) VerifyPIN(ctx context.Context, pin string) error {
	stored, err := s.localStore.Settings.Get(ctx, store.KeyUserPin)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return ErrPinNotSet
		}
		return fmt.Errorf("read stored pin: %w", err)
	}

	if pin != stored {
		return ErrPinMismatch
	}
	return nil
}

func (s *sessionManager) HasPIN(ctx context.Context) bool {
	pin, err := s.localStore.Settings.Get(ctx, store.KeyUserPin)
	return err == nil && models.PinCredential{PIN: pin}.IsSet()
}

func (s *sessionManager) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}

	if err := s.localStore.Settings.Set(ctx, store.KeyUseFingerprint, value); err != nil {
		return fmt.Errorf("persist biometric preference: %w", err)
	}
	return nil
}

func (s *sessionManager) BiometricEnabled(ctx context.Context) bool {
	value, err := s.localStore.Settings.Get(ctx, store.KeyUseFingerprint)
	return err == nil && value == "true"
}

// resolveUsername turns a bare numeric employee ID into the username the
// login endpoint expects. Inputs containing any non-digit pass through
// unchanged.
func (s *sessionManager) resolveUsername(ctx context.Context, userInput string) (string, error) {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return "", fmt.Errorf("%w: empty username", ErrLoginFailed)
	}

	if !allDigits(userInput) {
		return userInput, nil
	}

	detail, err := s.adapter.GetUserDetail(ctx, userInput)
	if err != nil {
		return "", fmt.Errorf("resolve employee id %q: %w", userInput, err)
	}
	if detail.Username == "" {
		return "", fmt.Errorf("%w: employee id %q is unknown", ErrLoginFailed, userInput)
	}

	return detail.Username, nil
}

func (s *sessionManager) persistCredential(ctx context.Context, username, password string, token models.Token) error {
	key, err := s.deviceKey(ctx)
	if err != nil {
		return err
	}

	sealed, err := s.keychain.Seal(password, key)
	if err != nil {
		return fmt.Errorf("seal password: %w", err)
	}

	settings := map[string]string{
		store.KeyUsername:  username,
		store.KeyPassword:  sealed,
		store.KeyUserToken: token.Key,
	}
	for k, v := range settings {
		if err = s.localStore.Settings.Set(ctx, k, v); err != nil {
			return fmt.Errorf("persist %s: %w", k, err)
		}
	}

	return nil
}

// persistCompanyInfo caches company metadata and derives the dbName setting.
// The backend prefixes db_name with a 3-character tenant marker that the
// client-side API paths do not use.
func (s *sessionManager) persistCompanyInfo(ctx context.Context) error {
	info, err := s.adapter.GetCompanyInfo(ctx)
	if err != nil {
		return fmt.Errorf("fetch company info: %w", err)
	}

	encoded, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode company info: %w", err)
	}
	if err = s.localStore.Settings.Set(ctx, store.KeyCompanyInfo, string(encoded)); err != nil {
		return fmt.Errorf("persist company info: %w", err)
	}

	dbName := info.DBName
	if len(dbName) > 3 {
		dbName = dbName[3:]
	}
	if err = s.localStore.Settings.Set(ctx, store.KeyDBName, dbName); err != nil {
		return fmt.Errorf("persist db name: %w", err)
	}

	return nil
}

// deviceKey derives the password-sealing key from the device secret and the
// persisted device salt, creating the salt on first use.
func (s *sessionManager) deviceKey(ctx context.Context) ([]byte, error) {
	var salt []byte

	stored, err := s.localStore.Settings.Get(ctx, store.KeyDeviceSalt)
	switch {
	case err == nil:
		salt, err = base64.StdEncoding.DecodeString(stored)
		if err != nil {
			return nil, fmt.Errorf("decode device salt: %w", err)
		}

	case errors.Is(err, store.ErrSettingNotFound):
		salt, err = s.keychain.GenerateDeviceSalt()
		if err != nil {
			return nil, fmt.Errorf("generate device salt: %w", err)
		}
		if err = s.localStore.Settings.Set(ctx, store.KeyDeviceSalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
			return nil, fmt.Errorf("persist device salt: %w", err)
		}

	default:
		return nil, fmt.Errorf("read device salt: %w", err)
	}

	return s.keychain.DeriveDeviceKey(deviceSecret(), salt), nil
}

// deviceSecret is a stable per-device value. It only has to differ between
// devices, not be unguessable: the salt plus Argon2id make the derived key
// device-bound.
func deviceSecret() []byte {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "hrm-client"
	}
	return []byte("hrm-client:" + hostname)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func validPin(pin string) bool {
	return len(pin) == 4 && allDigits(pin)
}
