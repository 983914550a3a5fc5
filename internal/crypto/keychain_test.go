package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeviceSalt_LengthAndUniqueness(t *testing.T) {
	k := NewKeyChainService()

	s1, err := k.GenerateDeviceSalt()
	require.NoError(t, err)
	s2, err := k.GenerateDeviceSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 16)
	assert.NotEqual(t, s1, s2)
}

func TestDeriveDeviceKey_Deterministic(t *testing.T) {
	k := NewKeyChainService()
	secret := []byte("device-secret-material")
	salt := []byte("fixed-salt-16byt")

	k1 := k.DeriveDeviceKey(secret, salt)
	k2 := k.DeriveDeviceKey(secret, salt)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)

	// Different salt yields a different key.
	k3 := k.DeriveDeviceKey(secret, []byte("other-salt-16byt"))
	assert.NotEqual(t, k1, k3)
}

func TestSealUnseal_RoundTrip(t *testing.T) {
	k := NewKeyChainService()
	key := k.DeriveDeviceKey([]byte("secret"), []byte("salt"))

	sealed, err := k.Seal("hunter2", key)
	require.NoError(t, err)
	assert.NotContains(t, sealed, "hunter2")

	plain, err := k.Unseal(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plain)
}

func TestUnseal_WrongKey(t *testing.T) {
	k := NewKeyChainService()
	key := k.DeriveDeviceKey([]byte("secret"), []byte("salt"))
	other := k.DeriveDeviceKey([]byte("not-the-secret"), []byte("salt"))

	sealed, err := k.Seal("hunter2", key)
	require.NoError(t, err)

	_, err = k.Unseal(sealed, other)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decryption failed")
}

func TestUnseal_MalformedBlob(t *testing.T) {
	k := NewKeyChainService()
	key := k.DeriveDeviceKey([]byte("secret"), []byte("salt"))

	_, err := k.Unseal("not-base64!!!", key)
	require.Error(t, err)

	// Valid base64 but shorter than a GCM nonce.
	_, err = k.Unseal("AAAA", key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ciphertext too short")
}
