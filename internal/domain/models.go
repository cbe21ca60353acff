package domain

// WorkspaceID identifies a workspace
type WorkspaceID int

// NoWorkspace means no workspace is selected
const NoWorkspace WorkspaceID = -1

// Valid reports whether the id points at a real workspace
func (id WorkspaceID) Valid() bool {
	return id >= 0
}

// Workspace groups scans and their findings
type Workspace struct {
	ID   WorkspaceID
	Name string
}

// ScanID identifies a scan within a workspace
type ScanID int64

// ScanRef references a scan the user can select
type ScanRef struct {
	ID          ScanID
	WorkspaceID WorkspaceID
	Name        string
}

// Finding represents a single scanner finding
type Finding struct {
	ID          int64
	WorkspaceID WorkspaceID
	ScanID      ScanID
	Host        string
	Port        string
	Plugin      string
	Severity    int
	Status      StatusCode
	Find        string
	Remark      string
}

// ScanSelection is an optional set of scans.
// The zero value means no selection at all, which is different from
// an empty selection.
type ScanSelection struct {
	refs     []ScanRef
	selected bool
}

// SelectScans returns a present selection holding refs (possibly none)
func SelectScans(refs ...ScanRef) ScanSelection {
	out := make([]ScanRef, len(refs))
	copy(out, refs)
	return ScanSelection{refs: out, selected: true}
}

// NoScans returns the absent selection
func NoScans() ScanSelection {
	return ScanSelection{}
}

// Selected reports whether a selection is present
func (s ScanSelection) Selected() bool {
	return s.selected
}

// Refs returns a copy of the selected scans
func (s ScanSelection) Refs() []ScanRef {
	if !s.selected {
		return nil
	}
	out := make([]ScanRef, len(s.refs))
	copy(out, s.refs)
	return out
}

// Len returns the number of selected scans
func (s ScanSelection) Len() int {
	return len(s.refs)
}

// Contains reports whether the scan id is part of the selection
func (s ScanSelection) Contains(id ScanID) bool {
	for _, ref := range s.refs {
		if ref.ID == id {
			return true
		}
	}
	return false
}

// Toggle returns a selection with ref added, or removed if already present.
// Toggling on an absent selection creates one.
func (s ScanSelection) Toggle(ref ScanRef) ScanSelection {
	refs := make([]ScanRef, 0, len(s.refs)+1)
	found := false
	for _, r := range s.refs {
		if r.ID == ref.ID {
			found = true
			continue
		}
		refs = append(refs, r)
	}
	if !found {
		refs = append(refs, ref)
	}
	return ScanSelection{refs: refs, selected: true}
}

// IDs returns the ids of the selected scans
func (s ScanSelection) IDs() []ScanID {
	ids := make([]ScanID, 0, len(s.refs))
	for _, ref := range s.refs {
		ids = append(ids, ref.ID)
	}
	return ids
}
