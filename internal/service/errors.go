package service

import "errors"

var (
	ErrNoStoredCredential = errors.New("no stored credential")
	ErrPinNotSet          = errors.New("pin is not set")
	ErrPinMismatch        = errors.New("pin mismatch")
	ErrInvalidPin         = errors.New("pin must be exactly four digits")
	ErrLoginFailed        = errors.New("login failed")

	ErrBiometricUnavailable = errors.New("biometric authentication unavailable")
	ErrBiometricRejected    = errors.New("biometric authentication rejected")

	// ErrScanPermissionDenied is returned by a Scanner whose input device
	// cannot be opened. The intake workflow stays in Idle instead of
	// failing hard.
	ErrScanPermissionDenied = errors.New("scanner permission denied")

	ErrScanIncomplete  = errors.New("scan payload incomplete")
	ErrRequestInFlight = errors.New("another request is in flight")

	ErrConsumptionExceedsAllocation = errors.New("consumed quantity exceeds allocation")
)
