// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package models

// Credential is the locally persisted identity of the logged-in user. It is
// created on a successful username/password login and read back on app
// restart to support silent re-authentication after a PIN or biometric
// unlock.
//
// The local settings store is the sole durable owner of this value; the
// Token field is only considered valid if it was issued by a prior
// successful login call.
type Credential struct {
	// Username is the account identifier accepted by the backend login
	// endpoint. Bare employee IDs are resolved to a username before login.
	Username string

	// SealedPassword is the user's password sealed with the device key
	// (see the crypto package). It is unsealed only to perform a silent
	// re-login after a successful PIN or biometric unlock and is never
	// stored in the clear.
	SealedPassword string

	// Token is the opaque session token issued by the backend. It is
	// attached to every authenticated request as `Authorization: Token <v>`.
	Token string
}

// Token is the session token handed to the rest of the app by the auth gate.
type Token struct {
	// Key is the opaque value returned by the backend login call.
	Key string
}

// String returns the raw token value for use in the Authorization header.
func (t Token) String() string { return t.Key }

// PinCredential is the locally stored 4-digit unlock PIN. A new PIN fully
// replaces the old one; partial updates do not exist.
type PinCredential struct {
	// PIN is exactly four numeric digits, stored as a string.
	PIN string
}

// IsSet reports whether a PIN has been registered on this device. When no
// PIN is set the "Login with PIN" affordance must not be offered.
func (p PinCredential) IsSet() bool { return p.PIN != "" }
