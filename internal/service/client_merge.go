// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-vault-sync/models"

// BuildPushPayload returns the payload to encrypt and push. Local-only
// content is never part of it.
func BuildPushPayload(local models.VaultPayload) models.VaultPayload {
	p := Project(local)
	if !p.HasLocalOnlyContent {
		return local
	}
	return p.CloudPayload
}

// MergeOnPull combines a freshly pulled remote payload with the local-only
// part of the current local payload.
//
// Remote records that the local device keeps private are dropped, so a pull
// never brings them back. Private folders reach into the remote forest: a
// folder that exists only remotely under a locally excluded folder is
// excluded too, together with everything filed in it. On an id collision the
// local-only record wins. Settings come from the remote side.
func MergeOnPull(remote, local models.VaultPayload) models.VaultPayload {
	lp := Project(local)
	rp := Project(remote)

	seeds := make([]string, 0, len(lp.ExcludedFolderIDs))
	for id := range lp.ExcludedFolderIDs {
		seeds = append(seeds, id)
	}
	ex := exclusion{
		folders:      IDSet(models.NewFolderTree(remote.Folders).Closure(seeds)),
		items:        lp.ExcludedItemIDs,
		storageItems: lp.ExcludedStorageItemIDs,
	}

	localFolders := filter(local.Folders, func(f models.Folder) bool { return lp.ExcludedFolderIDs.Has(f.ID) })
	localItems := filter(local.Items, func(i models.Item) bool { return lp.ExcludedItemIDs.Has(i.ID) })
	localStorage := filter(local.StorageItems, func(s models.StorageItem) bool { return lp.ExcludedStorageItemIDs.Has(s.ID) })
	localTrash := filter(local.Trash, func(e models.TrashEntry) bool { return lp.DroppedTrashIDs.Has(e.ID) })

	remoteFolders := filter(rp.CloudPayload.Folders, func(f models.Folder) bool {
		return !ex.folders.Has(f.ID) && !ex.folders.Has(f.ParentID)
	})
	remoteItems := filter(rp.CloudPayload.Items, func(i models.Item) bool {
		return !ex.items.Has(i.ID) && !ex.folders.Has(i.FolderID)
	})
	remoteStorage := filter(rp.CloudPayload.StorageItems, func(s models.StorageItem) bool {
		return !ex.storageItems.Has(s.ID) && !ex.folders.Has(s.FolderID)
	})
	remoteTrash := filter(rp.CloudPayload.Trash, ex.trashSyncable)

	return models.VaultPayload{
		Items:        mergeByID(remoteItems, localItems, func(i models.Item) string { return i.ID }),
		StorageItems: mergeByID(remoteStorage, localStorage, func(s models.StorageItem) string { return s.ID }),
		Folders:      mergeByID(remoteFolders, localFolders, func(f models.Folder) string { return f.ID }),
		Trash:        mergeByID(remoteTrash, localTrash, func(e models.TrashEntry) string { return e.ID }),
		Settings:     rp.CloudPayload.Settings,
	}
}

// mergeByID keeps primary order, replaces primary records in place with
// secondary records of the same id and appends the remaining secondary
// records in their own order.
func mergeByID[T any](primary, secondary []T, id func(T) string) []T {
	out := make([]T, 0, len(primary)+len(secondary))
	index := make(map[string]int, len(primary)+len(secondary))

	for _, v := range primary {
		if i, ok := index[id(v)]; ok {
			out[i] = v
			continue
		}
		index[id(v)] = len(out)
		out = append(out, v)
	}

	for _, v := range secondary {
		if i, ok := index[id(v)]; ok {
			out[i] = v
			continue
		}
		index[id(v)] = len(out)
		out = append(out, v)
	}

	return out
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
