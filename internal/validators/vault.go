package validators

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/MKhiriev/go-vault-sync/models"
)

// Field name constants accepted by [VaultValidator.Validate].
const (
	FieldOwnerID       = "owner_id"
	FieldVaultID       = "vault_id"
	FieldBlobID        = "blob_id"
	FieldRevision      = "revision"
	FieldEncryptedFile = "encrypted_file"
	FieldCiphertext    = "ciphertext"
	FieldNonce         = "nonce"
	FieldSHA256        = "sha256"
	FieldQuotas        = "quotas"
)

// maxIDLength bounds vault and blob identifiers; they end up in URL paths
// and object keys.
const maxIDLength = 256

// VaultValidator validates snapshot pushes and blob writes. Blob sizes are
// not checked here: size and quota limits belong to the blob store.
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the value type. Pointers are dereferenced.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PushRequest:
		return v.validatePush(value, fields...)
	case *models.PushRequest:
		return v.validatePush(*value, fields...)

	case models.PutBlobRequest:
		return v.validatePutBlob(value, fields...)
	case *models.PutBlobRequest:
		return v.validatePutBlob(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validatePush(req models.PushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldVaultID, FieldRevision, FieldEncryptedFile}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if strings.TrimSpace(req.OwnerID) == "" {
				return ErrInvalidOwnerID
			}
		case FieldVaultID:
			if !validID(req.VaultID) {
				return ErrInvalidVaultID
			}
		case FieldRevision:
			if req.Revision < 1 {
				return ErrInvalidRevision
			}
		case FieldEncryptedFile:
			if len(req.EncryptedFile) == 0 {
				return ErrEmptyEncryptedFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validatePutBlob(req models.PutBlobRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldVaultID, FieldBlobID, FieldNonce, FieldCiphertext, FieldSHA256, FieldQuotas}
	}

	blob := req.Blob
	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if strings.TrimSpace(blob.OwnerID) == "" {
				return ErrInvalidOwnerID
			}
		case FieldVaultID:
			if !validID(blob.VaultID) {
				return ErrInvalidVaultID
			}
		case FieldBlobID:
			if !validID(blob.BlobID) {
				return ErrInvalidBlobID
			}
		case FieldNonce:
			if len(blob.Nonce) == 0 {
				return ErrInvalidNonce
			}
		case FieldCiphertext:
			if len(blob.Ciphertext) == 0 {
				return ErrEmptyCiphertext
			}
		case FieldSHA256:
			if blob.SHA256 == "" {
				continue
			}
			if b, err := hex.DecodeString(blob.SHA256); err != nil || len(b) != 32 {
				return ErrInvalidChecksum
			}
		case FieldQuotas:
			if req.MaxFileBytes < 0 || req.MaxVaultBytes < 0 {
				return ErrInvalidQuotaOverride
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validID(id string) bool {
	return strings.TrimSpace(id) != "" && len(id) <= maxIDLength && !strings.ContainsAny(id, "/\\")
}
