package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-vault-sync/models"
)

// ── BuildPushPayload ─────────────────────────────────────────────────────────

func TestBuildPushPayload(t *testing.T) {
	t.Run("unchanged without local-only content", func(t *testing.T) {
		local := models.VaultPayload{Items: []models.Item{{ID: "a"}, {ID: "b"}}}
		assert.Equal(t, local, BuildPushPayload(local))
	})

	t.Run("local-only content is stripped", func(t *testing.T) {
		got := BuildPushPayload(samplePayload())

		assert.Equal(t, []string{"i-shared", "i-root"}, itemIDs(got.Items))
		assert.Equal(t, []string{"shared"}, folderIDs(got.Folders))
		assert.Equal(t, []string{"t-item"}, trashIDs(got.Trash))
	})
}

// ── MergeOnPull ──────────────────────────────────────────────────────────────

func TestMergeOnPull_PreservesLocalOnlyContent(t *testing.T) {
	local := models.VaultPayload{
		Items: []models.Item{
			{ID: "x", Title: "private note", ExcludeFromCloudSync: true},
			{ID: "shared", Title: "old"},
		},
	}
	remote := models.VaultPayload{
		Items:    []models.Item{{ID: "shared", Title: "new"}, {ID: "from-other-device"}},
		Settings: models.Settings{AutoLockMinutes: 5},
	}

	merged := MergeOnPull(remote, local)

	assert.Equal(t, []string{"shared", "from-other-device", "x"}, itemIDs(merged.Items))
	assert.Equal(t, "new", merged.Items[0].Title)
	assert.Equal(t, local.Items[0], merged.Items[2])
	assert.Equal(t, 5, merged.Settings.AutoLockMinutes)
}

func TestMergeOnPull_DoesNotResurrectLocallyExcludedContent(t *testing.T) {
	local := models.VaultPayload{
		Folders: []models.Folder{{ID: "F", ExcludeFromCloudSync: true}},
	}
	// another device does not exclude F and synced its content
	remote := models.VaultPayload{
		Folders:      []models.Folder{{ID: "F"}, {ID: "child", ParentID: "F"}, {ID: "other"}},
		Items:        []models.Item{{ID: "in-F", FolderID: "F"}, {ID: "elsewhere"}},
		StorageItems: []models.StorageItem{{ID: "file-in-F", FolderID: "F"}},
		Trash: []models.TrashEntry{
			{ID: "t-in-F", Snapshot: models.ItemSnapshot{Item: models.Item{ID: "old", FolderID: "F"}}},
			{ID: "t-ok", Snapshot: models.ItemSnapshot{Item: models.Item{ID: "old2"}}},
		},
	}

	merged := MergeOnPull(remote, local)

	assert.Equal(t, []string{"other", "F"}, folderIDs(merged.Folders))
	assert.Equal(t, local.Folders[0], merged.Folders[1])
	assert.Equal(t, []string{"elsewhere"}, itemIDs(merged.Items))
	assert.Empty(t, merged.StorageItems)
	assert.Equal(t, []string{"t-ok"}, trashIDs(merged.Trash))
}

func TestMergeOnPull_ExcludesRemoteOnlyDescendantsOfLocalFolder(t *testing.T) {
	local := models.VaultPayload{
		Folders: []models.Folder{{ID: "F", ExcludeFromCloudSync: true}},
	}
	// C and G were created under F on a device that does not exclude F
	remote := models.VaultPayload{
		Folders: []models.Folder{
			{ID: "F"},
			{ID: "C", ParentID: "F"},
			{ID: "G", ParentID: "C"},
			{ID: "other"},
		},
		Items: []models.Item{
			{ID: "inC", FolderID: "C"},
			{ID: "inG", FolderID: "G"},
			{ID: "elsewhere", FolderID: "other"},
		},
		StorageItems: []models.StorageItem{{ID: "file-in-G", FolderID: "G"}},
		Trash: []models.TrashEntry{
			{ID: "t-tree", Snapshot: models.FolderTreeSnapshot{Folders: []models.Folder{{ID: "old", ParentID: "G"}}}},
			{ID: "t-item", Snapshot: models.ItemSnapshot{Item: models.Item{ID: "gone", FolderID: "C"}}},
		},
	}

	merged := MergeOnPull(remote, local)

	assert.Equal(t, []string{"other", "F"}, folderIDs(merged.Folders))
	assert.Equal(t, []string{"elsewhere"}, itemIDs(merged.Items))
	assert.Empty(t, merged.StorageItems)
	assert.Empty(t, merged.Trash)

	known := make(map[string]bool, len(merged.Folders))
	for _, f := range merged.Folders {
		known[f.ID] = true
	}
	for _, item := range merged.Items {
		assert.True(t, item.FolderID == "" || known[item.FolderID], "item %s points at a missing folder", item.ID)
	}
	assert.Equal(t, []string{"elsewhere"}, itemIDs(BuildPushPayload(merged).Items))
}

func TestMergeOnPull_RemoteLocalOnlyContentNeverArrives(t *testing.T) {
	remote := models.VaultPayload{
		Items: []models.Item{{ID: "leaked", ExcludeFromCloudSync: true}, {ID: "ok"}},
	}

	merged := MergeOnPull(remote, models.VaultPayload{})

	assert.Equal(t, []string{"ok"}, itemIDs(merged.Items))
}

func TestMergeOnPull_KeepsDroppedLocalTrash(t *testing.T) {
	local := models.VaultPayload{
		Trash: []models.TrashEntry{
			{ID: "t-private", Snapshot: models.ItemSnapshot{Item: models.Item{ID: "p", ExcludeFromCloudSync: true}}},
			{ID: "t-shared", Snapshot: models.ItemSnapshot{Item: models.Item{ID: "s"}}},
		},
	}

	// the remote side already purged t-shared
	merged := MergeOnPull(models.VaultPayload{}, local)

	assert.Equal(t, []string{"t-private"}, trashIDs(merged.Trash))
}

func TestMergeOnPull_DoesNotMutateInputs(t *testing.T) {
	local, remote := samplePayload(), samplePayload()
	remote.Items = append(remote.Items, models.Item{ID: "extra"})
	localCopy, remoteCopy := samplePayload(), samplePayload()
	remoteCopy.Items = append(remoteCopy.Items, models.Item{ID: "extra"})

	_ = MergeOnPull(remote, local)

	assert.Equal(t, localCopy, local)
	assert.Equal(t, remoteCopy, remote)
}

// ── mergeByID ────────────────────────────────────────────────────────────────

func TestMergeByID(t *testing.T) {
	type rec struct{ id, v string }
	id := func(r rec) string { return r.id }

	primary := []rec{{"a", "p"}, {"b", "p"}, {"c", "p"}}
	secondary := []rec{{"d", "s"}, {"b", "s"}}

	got := mergeByID(primary, secondary, id)

	assert.Equal(t, []rec{{"a", "p"}, {"b", "s"}, {"c", "p"}, {"d", "s"}}, got)
	assert.Empty(t, mergeByID(nil, nil, id))
}
