package doctree

import "dashboard/backend/internal/model"

// Check verifies every structural invariant of the entry set plus the trail/location
// agreement. It returns the first violation found.
func (t *Tree) Check() error {
	if len(t.index) != len(t.entries) {
		return &InvariantError{Reason: "index out of sync with entries"}
	}
	for i, e := range t.entries {
		if pos, ok := t.index[e.ID]; !ok || pos != i {
			return &InvariantError{EntryID: e.ID, Reason: "index out of sync with entries"}
		}
	}
	if err := checkStructure(t.entries, t.index); err != nil {
		return err
	}
	return t.checkLocation()
}

func (t *Tree) checkLocation() error {
	if len(t.trail) == 0 || t.trail[0].ID != nil {
		return &InvariantError{Reason: "trail does not start at the root"}
	}
	last := t.trail[len(t.trail)-1]
	if !sameParent(last.ID, t.currentFolderID) {
		return &InvariantError{Reason: "trail does not end at the current folder"}
	}
	for i := 1; i < len(t.trail); i++ {
		crumb := t.trail[i]
		if crumb.ID == nil {
			return &InvariantError{Reason: "root marker inside the trail"}
		}
		// Each segment must be a live folder whose parent is the previous segment.
		e, ok := t.Get(*crumb.ID)
		if !ok {
			return &InvariantError{EntryID: *crumb.ID, Reason: "trail names a missing entry"}
		}
		if !e.IsFolder() {
			return &InvariantError{EntryID: e.ID, Reason: "trail names a file"}
		}
		if !sameParent(e.ParentID, t.trail[i-1].ID) {
			return &InvariantError{EntryID: e.ID, Reason: "trail is not an ancestor chain"}
		}
	}
	return nil
}

func buildIndex(entries []model.Entry) (map[int64]int, error) {
	index := make(map[int64]int, len(entries))
	for i, e := range entries {
		if _, dup := index[e.ID]; dup {
			return nil, &InvariantError{EntryID: e.ID, Reason: "duplicate id"}
		}
		index[e.ID] = i
	}
	return index, nil
}

// checkStructure enforces: every parent exists and is a folder, and no entry is its own
// ancestor.
func checkStructure(entries []model.Entry, index map[int64]int) error {
	for _, e := range entries {
		if e.Kind == nil {
			return &InvariantError{EntryID: e.ID, Reason: "missing kind"}
		}
		if e.ParentID == nil {
			continue
		}
		pos, ok := index[*e.ParentID]
		if !ok {
			return &InvariantError{EntryID: e.ID, Reason: "dangling parent"}
		}
		if !entries[pos].IsFolder() {
			return &InvariantError{EntryID: e.ID, Reason: "parent is not a folder"}
		}
	}

	// 0 = unvisited, 1 = on the current walk, 2 = known to reach the root.
	state := make(map[int64]uint8, len(entries))
	for _, start := range entries {
		var walk []int64
		id := start.ID
	climb:
		for {
			switch state[id] {
			case 2:
				break climb
			case 1:
				return &InvariantError{EntryID: id, Reason: "cycle in parent chain"}
			}
			state[id] = 1
			walk = append(walk, id)
			parent := entries[index[id]].ParentID
			if parent == nil {
				break climb
			}
			id = *parent
		}
		for _, w := range walk {
			state[w] = 2
		}
	}
	return nil
}
