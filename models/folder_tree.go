// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// FolderTree is an arena of folders indexed by id. Parent links are plain
// ids; every reparent is checked for cycles before it is committed.
type FolderTree struct {
	folders  map[string]Folder
	order    []string
	children map[string][]string
}

// NewFolderTree builds an arena from folders, keeping their order. Later
// duplicates of an id replace earlier ones in place.
func NewFolderTree(folders []Folder) *FolderTree {
	t := &FolderTree{
		folders: make(map[string]Folder, len(folders)),
		order:   make([]string, 0, len(folders)),
	}
	for _, f := range folders {
		if _, ok := t.folders[f.ID]; !ok {
			t.order = append(t.order, f.ID)
		}
		t.folders[f.ID] = f
	}
	t.index()
	return t
}

func (t *FolderTree) index() {
	t.children = make(map[string][]string, len(t.order))
	for _, id := range t.order {
		if parent := t.folders[id].ParentID; parent != "" {
			t.children[parent] = append(t.children[parent], id)
		}
	}
}

// Folders returns all folders in insertion order.
func (t *FolderTree) Folders() []Folder {
	out := make([]Folder, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.folders[id])
	}
	return out
}

// Closure returns seeds together with every folder reachable from them
// through child links. Seeds need not be in the arena, so their children
// are still found when only the children are known. Each id is visited
// once, which bounds the walk even on a corrupt parent chain.
func (t *FolderTree) Closure(seeds []string) map[string]struct{} {
	out := make(map[string]struct{}, len(seeds))
	queue := make([]string, 0, len(seeds))
	for _, id := range seeds {
		if _, ok := out[id]; id == "" || ok {
			continue
		}
		out[id] = struct{}{}
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, child := range t.children[id] {
			if _, ok := out[child]; ok {
				continue
			}
			out[child] = struct{}{}
			queue = append(queue, child)
		}
	}

	return out
}

// Reparent moves folder id under newParentID ("" moves it to the root).
// It fails with ErrFolderCycle when newParentID is id itself or one of its
// descendants, and leaves the arena unchanged on any error.
func (t *FolderTree) Reparent(id, newParentID string) error {
	f, ok := t.folders[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	if newParentID != "" {
		if _, ok := t.folders[newParentID]; !ok {
			return fmt.Errorf("%w: parent %s", ErrFolderNotFound, newParentID)
		}
		if t.isAncestorOrSelf(id, newParentID) {
			return fmt.Errorf("%w: %s under %s", ErrFolderCycle, id, newParentID)
		}
	}

	f.ParentID = newParentID
	t.folders[id] = f
	t.index()
	return nil
}

// isAncestorOrSelf walks up from start and reports whether candidate is on
// the way. The walk is bounded by the folder count, so an already corrupt
// chain is reported as a cycle instead of looping.
func (t *FolderTree) isAncestorOrSelf(candidate, start string) bool {
	current := start
	for steps := 0; steps <= len(t.order); steps++ {
		if current == candidate {
			return true
		}
		parent, ok := t.folders[current]
		if !ok || parent.ParentID == "" {
			return false
		}
		current = parent.ParentID
	}
	return true
}
