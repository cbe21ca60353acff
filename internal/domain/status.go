package domain

// StatusCode is a finding status as supplied by the status control.
// Values are kept verbatim; known codes have a label.
type StatusCode string

// Known finding statuses
const (
	StatusNew     StatusCode = "1"
	StatusChanged StatusCode = "2"
	StatusOpen    StatusCode = "3"
	StatusNoIssue StatusCode = "4"
	StatusGone    StatusCode = "5"
	StatusClosed  StatusCode = "6"
	StatusMasked  StatusCode = "99"
)

// DefaultStatus is the status a widget starts with
const DefaultStatus = StatusNew

var statusLabels = map[StatusCode]string{
	StatusNew:     "New",
	StatusChanged: "Changed",
	StatusOpen:    "Open",
	StatusNoIssue: "No issue",
	StatusGone:    "Gone",
	StatusClosed:  "Closed",
	StatusMasked:  "Masked",
}

// KnownStatuses returns the known statuses in display order
func KnownStatuses() []StatusCode {
	return []StatusCode{
		StatusNew,
		StatusChanged,
		StatusOpen,
		StatusNoIssue,
		StatusGone,
		StatusClosed,
		StatusMasked,
	}
}

// String returns the raw code
func (s StatusCode) String() string {
	return string(s)
}

// Known reports whether the code is one of the known statuses
func (s StatusCode) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns a human readable name, or the raw code for unknown values
func (s StatusCode) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Neighbor returns the known status offset steps away from s, wrapping around.
// Unknown codes step from the first known status.
func (s StatusCode) Neighbor(offset int) StatusCode {
	known := KnownStatuses()
	idx := -1
	for i, code := range known {
		if code == s {
			idx = i
			break
		}
	}
	if idx < 0 {
		if offset >= 0 {
			return known[0]
		}
		return known[len(known)-1]
	}
	n := len(known)
	return known[((idx+offset)%n+n)%n]
}
