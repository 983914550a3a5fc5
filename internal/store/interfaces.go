// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

// Package store implements the device-local persistent settings store backed
// by SQLite. It holds the session credential, the unlock PIN, the biometric
// preference, and cached profile/company metadata as string key-value pairs
// (JSON-encoded where structured).
//
// The store is process-wide and writes are last-writer-wins; writes are
// user-initiated and not concurrent in practice.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Well-known settings keys. The names are fixed by the backend-facing app
// contract and must not be renamed.
const (
	KeyUserToken      = "userToken"
	KeyUsername       = "username"
	KeyPassword       = "Password"
	KeyUserPin        = "userPin"
	KeyUseFingerprint = "useFingerprint"
	KeyProfile        = "profile"
	KeyProfileName    = "profilename"
	KeyCompanyInfo    = "companyInfo"
	KeyDBName         = "dbName"
	KeyDeviceSalt     = "deviceSalt"
)

// SettingsRepository is the low-level device-local key-value repository.
type SettingsRepository interface {
	// Get returns the value stored under key, or [ErrSettingNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteAll removes every stored setting. Used by logout.
	DeleteAll(ctx context.Context) error
}
