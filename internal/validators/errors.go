package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwnerID       = errors.New("invalid owner ID")
	ErrInvalidVaultID       = errors.New("invalid vault ID")
	ErrInvalidBlobID        = errors.New("invalid blob ID")
	ErrInvalidRevision      = errors.New("revision must be positive")
	ErrEmptyEncryptedFile   = errors.New("encrypted file is required")
	ErrEmptyCiphertext      = errors.New("blob ciphertext is required")
	ErrInvalidNonce         = errors.New("blob nonce is required")
	ErrInvalidChecksum      = errors.New("invalid blob sha256 checksum")
	ErrInvalidQuotaOverride = errors.New("quota override must not be negative")
)
