package crypto

import "errors"

var (
	// ErrDecryptionFailure is returned when a ciphertext cannot be opened:
	// wrong key, tampered data, or a malformed envelope.
	ErrDecryptionFailure = errors.New("decryption failure")

	// ErrInvalidKeyMaterial is returned when a cipher is built from an empty
	// password or a salt that is too short.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)
