// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-vault-sync/models"
)

// MoveFolder returns a copy of payload with folderID moved under newParentID
// ("" moves it to the root). The move is checked against the folder arena
// first, so a cycle or an unknown folder leaves payload as it was. Folder
// order is kept; a duplicated folder id collapses to its last entry.
func MoveFolder(payload models.VaultPayload, folderID, newParentID string) (models.VaultPayload, error) {
	tree := models.NewFolderTree(payload.Folders)
	if err := tree.Reparent(folderID, newParentID); err != nil {
		return payload, fmt.Errorf("error moving folder: %w", err)
	}

	payload.Folders = tree.Folders()
	return payload, nil
}
