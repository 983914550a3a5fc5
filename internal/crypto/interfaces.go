// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChainService seals and unseals secrets held in the device-local
// settings store. The stored password that enables silent re-login after a
// PIN or biometric unlock must never rest in the clear, so it is sealed
// under a key derived from a per-device secret.
type KeyChainService interface {
	// GenerateDeviceSalt returns a fresh random salt for device-key
	// derivation. Returns an error if the OS CSPRNG read fails.
	GenerateDeviceSalt() ([]byte, error)

	// DeriveDeviceKey derives the 256-bit sealing key from the device
	// secret and salt using Argon2id. The key exists only in process
	// memory.
	DeriveDeviceKey(deviceSecret []byte, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-256-GCM and returns a
	// Base64 blob of nonce ‖ ciphertext.
	Seal(plaintext string, key []byte) (string, error)

	// Unseal reverses Seal. Returns an error if the blob is malformed or
	// the key is wrong (authentication-tag mismatch).
	Unseal(sealedB64 string, key []byte) (string, error)
}
