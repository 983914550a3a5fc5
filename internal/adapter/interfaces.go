// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

// Package adapter provides transport-layer abstractions for communicating
// with the Atomwalk HRM backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). A 401 is surfaced to the
// caller as an auth failure and is never silently retried.
package adapter

import (
	"context"

	"github.com/atomwalk/hrm-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the Atomwalk
// HRM backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type BackendAdapter interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login, and with "" on logout.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Ping probes backend reachability without authentication. It is used
	// as the connectivity check gating PIN and biometric unlock attempts.
	// Returns [ErrServerUnreachable] when the backend cannot be reached.
	Ping(ctx context.Context) error

	// Login authenticates with username/password. On HTTP 200 the returned
	// token is stored via SetToken and returned; any other status is a
	// login failure.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// GetUserDetail resolves a bare employee ID to the username expected
	// by Login. The endpoint is public and lives outside the API root.
	GetUserDetail(ctx context.Context, userID string) (models.UserDetail, error)

	// GetProfile fetches the employee profile of the logged-in user.
	GetProfile(ctx context.Context) (models.Profile, error)

	// GetCompanyInfo fetches company display metadata.
	GetCompanyInfo(ctx context.Context) (models.CompanyInfo, error)

	// GetActivities fetches the individual-contributor activity summary
	// for the given call mode.
	GetActivities(ctx context.Context, callMode string) (models.ActivitySummary, error)

	// GetManagerActivities fetches the manager view of the activities
	// endpoint for the given call mode.
	GetManagerActivities(ctx context.Context, callMode string) (models.ManagerActivitySummary, error)

	// GetActivityQC fetches the quality-check line items of an activity.
	GetActivityQC(ctx context.Context, activityID, callMode string) ([]models.QCLine, error)

	// GetActivityInventory fetches the consumption/production line items
	// of an activity (call modes INV_IN / INV_OUT).
	GetActivityInventory(ctx context.Context, activityID, callMode string) ([]models.InventoryLine, error)

	// ProcessActivityInventory commits consumption/production or QC
	// updates for an activity.
	ProcessActivityInventory(ctx context.Context, update models.ActivityInventoryUpdate) error

	// GetInventoryItems fetches the inventory master-data list.
	GetInventoryItems(ctx context.Context) ([]models.InventoryItem, error)

	// GetBinNumbers fetches the bin locations available for an item.
	GetBinNumbers(ctx context.Context, itemID string) ([]models.BinLocation, error)

	// GetItemQuantity performs the GET_QTY inspection call for the given
	// item+batch+bin tuple. binLocationID may be empty.
	GetItemQuantity(ctx context.Context, itemNumber, batchNumber, binLocationID string) (models.ItemQuantity, error)

	// SubmitInspection persists an intake/inspection record through the
	// item-inspect endpoint.
	SubmitInspection(ctx context.Context, item models.InspectItemData) error

	// RegisterSerialIntake registers new stock with its scanned serial
	// numbers (call_mode ITEM_NEW) through the item-inspect endpoint.
	RegisterSerialIntake(ctx context.Context, intake models.SerialIntake) error
}
