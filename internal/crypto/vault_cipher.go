// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-vault-sync/models"
)

const (
	// SaltSize is the length of a derived owner salt.
	SaltSize = 16

	minSaltSize = 8
)

// KDFParams are the Argon2id tuning parameters.
type KDFParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultKDFParams are the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
var DefaultKDFParams = KDFParams{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
}

// vaultCipher is the AES-256-GCM implementation of [VaultCipher].
type vaultCipher struct {
	aead cipher.AEAD
}

// OwnerSalt derives a salt from the owner id for deployments that do not
// configure one. Every device of an owner derives the same key from the same
// master password.
func OwnerSalt(ownerID string) []byte {
	sum := sha256.Sum256([]byte("go-vault-sync|" + ownerID))
	return sum[:SaltSize]
}

// ParseSalt decodes a base64 salt from configuration.
func ParseSalt(encoded string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %w", ErrInvalidKeyMaterial, err)
	}
	if len(salt) < minSaltSize {
		return nil, fmt.Errorf("%w: salt shorter than %d bytes", ErrInvalidKeyMaterial, minSaltSize)
	}
	return salt, nil
}

// DeriveKey derives a vault key from the master password and salt using
// Argon2id. The key exists only in client memory.
func DeriveKey(masterPassword string, salt []byte, params KDFParams) ([]byte, error) {
	if masterPassword == "" || len(salt) < minSaltSize {
		return nil, ErrInvalidKeyMaterial
	}

	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		params.Time,
		params.Memory,
		params.Threads,
		params.KeyLen,
	), nil
}

// NewVaultCipher derives a key from the master password with
// [DefaultKDFParams] and returns a cipher using it.
func NewVaultCipher(masterPassword string, salt []byte) (VaultCipher, error) {
	key, err := DeriveKey(masterPassword, salt, DefaultKDFParams)
	if err != nil {
		return nil, err
	}
	return NewVaultCipherFromKey(key)
}

// NewVaultCipherFromKey builds a cipher from a raw 16, 24 or 32 byte key.
func NewVaultCipherFromKey(key []byte) (VaultCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &vaultCipher{aead: aead}, nil
}

func (v *vaultCipher) EncryptPayload(vaultID string, payload models.VaultPayload) ([]byte, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	nonce, err := v.newNonce()
	if err != nil {
		return nil, err
	}

	// nonce || ciphertext
	sealed := v.aead.Seal(nil, nonce, plaintext, payloadAAD(vaultID))
	return append(nonce, sealed...), nil
}

func (v *vaultCipher) DecryptPayload(vaultID string, encrypted []byte) (models.VaultPayload, error) {
	nonceSize := v.aead.NonceSize()
	if len(encrypted) < nonceSize {
		return models.VaultPayload{}, fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailure)
	}
	nonce, ciphertext := encrypted[:nonceSize], encrypted[nonceSize:]

	// an error here almost always means a wrong master password
	plaintext, err := v.aead.Open(nil, nonce, ciphertext, payloadAAD(vaultID))
	if err != nil {
		return models.VaultPayload{}, fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}

	var payload models.VaultPayload
	if err = json.Unmarshal(plaintext, &payload); err != nil {
		return models.VaultPayload{}, fmt.Errorf("%w: unmarshal payload: %w", ErrDecryptionFailure, err)
	}

	return payload, nil
}

func (v *vaultCipher) EncryptBlob(blobID string, plaintext []byte) ([]byte, []byte, error) {
	nonce, err := v.newNonce()
	if err != nil {
		return nil, nil, err
	}

	return nonce, v.aead.Seal(nil, nonce, plaintext, blobAAD(blobID)), nil
}

func (v *vaultCipher) DecryptBlob(blobID string, nonce, ciphertext []byte) ([]byte, error) {
	if len(nonce) != v.aead.NonceSize() {
		return nil, fmt.Errorf("%w: invalid nonce length %d", ErrDecryptionFailure, len(nonce))
	}

	plaintext, err := v.aead.Open(nil, nonce, ciphertext, blobAAD(blobID))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}

	return plaintext, nil
}

func (v *vaultCipher) newNonce() ([]byte, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}

func payloadAAD(vaultID string) []byte {
	return []byte("vault:" + vaultID)
}

func blobAAD(blobID string) []byte {
	return []byte("blob:" + blobID)
}
