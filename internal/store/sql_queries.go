package store

import (
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/models"
)

const (
	snapshotsTable = "vault_snapshots"
	blobsTable     = "vault_blobs"

	// pushSnapshotConflict turns the insert into a compare-and-set: an existing
	// row is replaced only by a strictly newer revision.
	pushSnapshotConflict = `ON CONFLICT (owner_id, vault_id) DO UPDATE SET
			revision = EXCLUDED.revision,
			encrypted_file = EXCLUDED.encrypted_file,
			updated_at = EXCLUDED.updated_at
		WHERE vault_snapshots.revision < EXCLUDED.revision`

	upsertBlobConflict = `ON CONFLICT (owner_id, vault_id, blob_id) DO UPDATE SET
			nonce = EXCLUDED.nonce,
			ciphertext = EXCLUDED.ciphertext,
			object_key = EXCLUDED.object_key,
			size_bytes = EXCLUDED.size_bytes,
			sha256 = EXCLUDED.sha256,
			mime_type = EXCLUDED.mime_type,
			file_name = EXCLUDED.file_name,
			updated_at = EXCLUDED.updated_at`

	// lockVault serialises blob writers of one vault until the transaction ends.
	lockVault = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	snapshotColumns = []string{"owner_id", "vault_id", "revision", "encrypted_file", "updated_at"}

	blobMetaColumns = []string{"owner_id", "vault_id", "blob_id", "nonce", "size_bytes", "sha256", "mime_type", "file_name", "updated_at"}

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

func buildPullSnapshotQuery(ownerID, vaultID string) (string, []any, error) {
	return psql.Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Eq{"owner_id": ownerID, "vault_id": vaultID}).
		ToSql()
}

func buildPullByOwnerQuery(ownerID string) (string, []any, error) {
	return psql.Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
}

// buildPullByLegacyPrefixQuery matches owner keys of the form
// "user:<userID>|<session>". LIKE metacharacters in userID are escaped with
// backslash, the postgres default escape character.
func buildPullByLegacyPrefixQuery(userID string) (string, []any, error) {
	pattern := likeEscaper.Replace(models.LegacyOwnerPrefix(userID)) + "%"

	return psql.Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Like{"owner_id": pattern}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
}

func buildPushSnapshotQuery(req models.PushRequest) (string, []any, error) {
	return psql.Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(req.OwnerID, req.VaultID, req.Revision, req.EncryptedFile, req.UpdatedAt).
		Suffix(pushSnapshotConflict).
		ToSql()
}

// buildBlobUsageQuery sums the stored sizes of a vault, optionally leaving out
// one blob. Negative sizes count as zero.
func buildBlobUsageQuery(ownerID, vaultID, excludeBlobID string) (string, []any, error) {
	query := psql.Select("COALESCE(SUM(GREATEST(size_bytes, 0)), 0)").
		From(blobsTable).
		Where(sq.Eq{"owner_id": ownerID, "vault_id": vaultID})

	if excludeBlobID != "" {
		query = query.Where(sq.NotEq{"blob_id": excludeBlobID})
	}

	return query.ToSql()
}

func buildUpsertBlobQuery(blob models.VaultBlob, objectKey string) (string, []any, error) {
	var ciphertext []byte
	var key *string
	if objectKey == "" {
		ciphertext = blob.Ciphertext
	} else {
		key = &objectKey
	}

	return psql.Insert(blobsTable).
		Columns("owner_id", "vault_id", "blob_id", "nonce", "ciphertext", "object_key",
			"size_bytes", "sha256", "mime_type", "file_name", "updated_at").
		Values(blob.OwnerID, blob.VaultID, blob.BlobID, blob.Nonce, ciphertext, key,
			blob.SizeBytes, blob.SHA256, blob.MimeType, blob.FileName, blob.UpdatedAt).
		Suffix(upsertBlobConflict).
		ToSql()
}

func buildGetBlobQuery(ownerID, vaultID, blobID string) (string, []any, error) {
	return psql.Select(slices.Concat(blobMetaColumns, []string{"ciphertext", "object_key"})...).
		From(blobsTable).
		Where(sq.Eq{"owner_id": ownerID, "vault_id": vaultID, "blob_id": blobID}).
		ToSql()
}

func buildBlobObjectKeyQuery(ownerID, vaultID, blobID string) (string, []any, error) {
	return psql.Select("object_key").
		From(blobsTable).
		Where(sq.Eq{"owner_id": ownerID, "vault_id": vaultID, "blob_id": blobID}).
		ToSql()
}

func buildListBlobsQuery(ownerID, vaultID string) (string, []any, error) {
	return psql.Select(blobMetaColumns...).
		From(blobsTable).
		Where(sq.Eq{"owner_id": ownerID, "vault_id": vaultID}).
		OrderBy("blob_id").
		ToSql()
}

func buildDeleteBlobQuery(ownerID, vaultID, blobID string) (string, []any, error) {
	return psql.Delete(blobsTable).
		Where(sq.Eq{"owner_id": ownerID, "vault_id": vaultID, "blob_id": blobID}).
		Suffix("RETURNING object_key").
		ToSql()
}
