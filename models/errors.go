// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrUnknownTrashKind is returned when a trash entry carries an unknown
	// discriminator or no snapshot at all.
	ErrUnknownTrashKind = errors.New("unknown trash entry kind")

	// ErrFolderNotFound is returned when a folder or its parent is missing
	// from the folder arena.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrFolderCycle is returned when a reparent would make a folder its own
	// ancestor.
	ErrFolderCycle = errors.New("folder reparent would create a cycle")

	// ErrInvalidStorageMode is returned for an unsupported local storage mode.
	ErrInvalidStorageMode = errors.New("invalid local storage mode")
)
