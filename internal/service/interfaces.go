// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package service

import (
	"context"

	"github.com/atomwalk/hrm-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionManager owns the backend session and the credential material
// persisted in the device-local store. It is the only component that reads
// or writes the stored password, which rests sealed under the device key.
type SessionManager interface {
	// Login authenticates with the backend. userInput may be a username or
	// a bare numeric employee ID, which is resolved to a username first.
	// On success the session token, username, sealed password, company
	// info and db name are persisted and the token is installed on the
	// backend adapter.
	Login(ctx context.Context, userInput, password string) (models.Token, error)

	// SilentLogin re-authenticates with the stored username and sealed
	// password. It is called after a successful PIN or biometric unlock.
	// Returns [ErrNoStoredCredential] when nothing is stored.
	SilentLogin(ctx context.Context) (models.Token, error)

	// Logout drops the session token from the adapter and wipes every
	// stored setting.
	Logout(ctx context.Context) error

	// StoredUsername returns the username persisted by the last login, or
	// [ErrNoStoredCredential].
	StoredUsername(ctx context.Context) (string, error)

	// SetPIN stores a new 4-digit unlock PIN, fully replacing any previous
	// one. Returns [ErrInvalidPin] for anything but four digits.
	SetPIN(ctx context.Context, pin string) error

	// VerifyPIN compares pin against the stored value. Returns
	// [ErrPinNotSet] or [ErrPinMismatch] on failure, nil on match.
	VerifyPIN(ctx context.Context, pin string) error

	// HasPIN reports whether an unlock PIN is registered on this device.
	HasPIN(ctx context.Context) bool

	// SetBiometricEnabled persists the biometric opt-in preference.
	SetBiometricEnabled(ctx context.Context, enabled bool) error

	// BiometricEnabled reports the stored biometric opt-in preference.
	BiometricEnabled(ctx context.Context) bool
}

// ProfileService fetches and caches the employee profile of the logged-in
// user.
type ProfileService interface {
	// FetchProfile loads the profile and company info from the backend and
	// caches them in the local store.
	FetchProfile(ctx context.Context) (models.Profile, error)

	// CachedProfile returns the profile cached by the last FetchProfile,
	// without touching the network.
	CachedProfile(ctx context.Context) (models.Profile, error)

	// CachedProfileName returns the employee display name cached in the
	// local store, or "" if none is cached.
	CachedProfileName(ctx context.Context) string

	// IsManager reports whether the cached profile carries the manager
	// role flag.
	IsManager(ctx context.Context) bool
}

// ActivityService exposes the activity list, its QC and inventory line
// items, and the inventory master data used by the intake flows.
type ActivityService interface {
	// GetSummary fetches the individual-contributor activity summary.
	GetSummary(ctx context.Context, callMode string) (models.ActivitySummary, error)

	// GetManagerSummary fetches the manager activity view.
	GetManagerSummary(ctx context.Context, callMode string) (models.ManagerActivitySummary, error)

	// GetQCLines fetches the quality-check line items of an activity.
	GetQCLines(ctx context.Context, activityID, callMode string) ([]models.QCLine, error)

	// GetInventoryLines fetches the consumption/production line items of
	// an activity (call modes INV_IN / INV_OUT).
	GetInventoryLines(ctx context.Context, activityID, callMode string) ([]models.InventoryLine, error)

	// CommitInventory commits consumption/production updates. For INV_IN
	// it enforces that already-consumed plus current quantity never
	// exceeds the allocated quantity of a line, returning
	// [ErrConsumptionExceedsAllocation] before any backend call.
	CommitInventory(ctx context.Context, update models.ActivityInventoryUpdate) error

	// ListInventoryItems fetches the inventory master-data list.
	ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error)

	// ListBinLocations fetches the bin locations available for an item.
	ListBinLocations(ctx context.Context, itemID string) ([]models.BinLocation, error)

	// RegisterSerialIntake registers new stock with its scanned serial
	// numbers.
	RegisterSerialIntake(ctx context.Context, intake models.SerialIntake) error
}

// BiometricPrompter abstracts the OS-level biometric prompt. The terminal
// build shells out to an external verify helper; platforms with a native
// sensor API inject their own implementation.
type BiometricPrompter interface {
	// Available reports whether a biometric sensor can be used on this
	// device.
	Available() bool

	// Prompt blocks until the user passes, fails or cancels the biometric
	// check. A false result with nil error means failure or cancel.
	Prompt(ctx context.Context, reason string) (bool, error)
}

// Scanner acquires one raw payload per scan session from the attached
// barcode scanner. Implementations block until a decode arrives or ctx is
// done; [ErrScanPermissionDenied] signals the input device cannot be opened.
type Scanner interface {
	Acquire(ctx context.Context) (string, error)
}

// ConnectivityProbe reports backend reachability. The gate checks it before
// evaluating a PIN or opening the biometric prompt so that offline attempts
// are never counted against the user.
type ConnectivityProbe interface {
	Ping(ctx context.Context) error
}
