package crypto

import "github.com/MKhiriev/go-vault-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher performs all client-side encryption. The remote store only
// ever sees its output.
//
// Payload and blob ciphertexts are bound to the vault and blob they belong to
// through AES-GCM additional data, so a ciphertext copied under another id
// fails to decrypt.
type VaultCipher interface {
	// EncryptPayload serializes the payload to JSON and seals it.
	// The result is nonce || ciphertext.
	EncryptPayload(vaultID string, payload models.VaultPayload) ([]byte, error)

	// DecryptPayload opens a sealed payload. Any failure, including a wrong
	// key, wraps [ErrDecryptionFailure].
	DecryptPayload(vaultID string, encrypted []byte) (models.VaultPayload, error)

	// EncryptBlob seals attachment bytes with a fresh nonce.
	EncryptBlob(blobID string, plaintext []byte) (nonce, ciphertext []byte, err error)

	// DecryptBlob opens attachment bytes sealed by EncryptBlob.
	DecryptBlob(blobID string, nonce, ciphertext []byte) ([]byte, error)
}
