// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-vault-sync/models"

// IDSet is a set of record ids.
type IDSet map[string]struct{}

// Has reports whether id is in the set. Empty ids are never members.
func (s IDSet) Has(id string) bool {
	if id == "" {
		return false
	}
	_, ok := s[id]
	return ok
}

func (s IDSet) add(id string) {
	s[id] = struct{}{}
}

// Projection is the cloud-eligible part of a payload plus what was left out.
type Projection struct {
	// CloudPayload holds everything that may leave the device.
	CloudPayload models.VaultPayload

	ExcludedFolderIDs      IDSet
	ExcludedItemIDs        IDSet
	ExcludedStorageItemIDs IDSet

	// DroppedTrashIDs are trash entries that embed local-only content.
	DroppedTrashIDs IDSet

	// HasLocalOnlyContent is true when any set above is non-empty.
	HasLocalOnlyContent bool
}

// exclusion is the set of local-only ids a record is checked against.
type exclusion struct {
	folders      IDSet
	items        IDSet
	storageItems IDSet
}

// CollectExcludedFolderIDs returns the folders flagged as local-only together
// with all of their descendants. Each folder is visited at most once, so a
// corrupt parent chain cannot make the walk loop.
func CollectExcludedFolderIDs(folders []models.Folder) IDSet {
	seeds := make([]string, 0, len(folders))
	for _, f := range folders {
		if f.ExcludeFromCloudSync {
			seeds = append(seeds, f.ID)
		}
	}

	return IDSet(models.NewFolderTree(folders).Closure(seeds))
}

// Project splits payload into its cloud-eligible part and the local-only
// complement. The input is never modified.
func Project(payload models.VaultPayload) Projection {
	p := Projection{
		ExcludedFolderIDs:      CollectExcludedFolderIDs(payload.Folders),
		ExcludedItemIDs:        make(IDSet),
		ExcludedStorageItemIDs: make(IDSet),
		DroppedTrashIDs:        make(IDSet),
	}
	ex := exclusion{folders: p.ExcludedFolderIDs, items: p.ExcludedItemIDs, storageItems: p.ExcludedStorageItemIDs}

	cloud := models.VaultPayload{
		Items:        make([]models.Item, 0, len(payload.Items)),
		StorageItems: make([]models.StorageItem, 0, len(payload.StorageItems)),
		Folders:      make([]models.Folder, 0, len(payload.Folders)),
		Trash:        make([]models.TrashEntry, 0, len(payload.Trash)),
		Settings:     payload.Settings,
	}

	for _, f := range payload.Folders {
		if p.ExcludedFolderIDs.Has(f.ID) {
			continue
		}
		cloud.Folders = append(cloud.Folders, f)
	}

	for _, item := range payload.Items {
		if item.ExcludeFromCloudSync || p.ExcludedFolderIDs.Has(item.FolderID) {
			p.ExcludedItemIDs.add(item.ID)
			continue
		}
		cloud.Items = append(cloud.Items, item)
	}

	for _, si := range payload.StorageItems {
		if si.ExcludeFromCloudSync || p.ExcludedFolderIDs.Has(si.FolderID) {
			p.ExcludedStorageItemIDs.add(si.ID)
			continue
		}
		cloud.StorageItems = append(cloud.StorageItems, si)
	}

	for _, entry := range payload.Trash {
		if !ex.trashSyncable(entry) {
			p.DroppedTrashIDs.add(entry.ID)
			continue
		}
		cloud.Trash = append(cloud.Trash, entry)
	}

	p.CloudPayload = cloud
	p.HasLocalOnlyContent = len(p.ExcludedFolderIDs) > 0 ||
		len(p.ExcludedItemIDs) > 0 ||
		len(p.ExcludedStorageItemIDs) > 0 ||
		len(p.DroppedTrashIDs) > 0

	return p
}

func (ex exclusion) folderAllowed(f models.Folder) bool {
	return !f.ExcludeFromCloudSync && !ex.folders.Has(f.ID) && !ex.folders.Has(f.ParentID)
}

func (ex exclusion) itemAllowed(item models.Item) bool {
	return !item.ExcludeFromCloudSync && !ex.items.Has(item.ID) && !ex.folders.Has(item.FolderID)
}

func (ex exclusion) storageItemAllowed(si models.StorageItem) bool {
	return !si.ExcludeFromCloudSync && !ex.storageItems.Has(si.ID) && !ex.folders.Has(si.FolderID)
}

// trashSyncable reports whether every object embedded in entry may leave the
// device. Entries with no snapshot are never synced.
func (ex exclusion) trashSyncable(entry models.TrashEntry) bool {
	switch s := entry.Snapshot.(type) {
	case models.ItemSnapshot:
		return ex.itemAllowed(s.Item)
	case models.StorageItemSnapshot:
		return ex.storageItemAllowed(s.StorageItem)
	case models.FolderTreeSnapshot:
		for _, f := range s.Folders {
			if !ex.folderAllowed(f) {
				return false
			}
		}
		for _, item := range s.Items {
			if !ex.itemAllowed(item) {
				return false
			}
		}
		for _, si := range s.StorageItems {
			if !ex.storageItemAllowed(si) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
