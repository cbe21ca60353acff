package statustable

import (
	"log/slog"

	"statustable/internal/domain"
)

// Options is a partial widget configuration. Nil fields are left alone:
// at construction they fall back to defaults, on Update they keep the
// current value.
type Options struct {
	WorkspaceID *domain.WorkspaceID
	Scans       *domain.ScanSelection
	Status      *domain.StatusCode
}

// Workspace returns Options that set only the workspace
func Workspace(id domain.WorkspaceID) Options {
	return Options{WorkspaceID: &id}
}

// Scans returns Options that set only the scan selection
func Scans(sel domain.ScanSelection) Options {
	return Options{Scans: &sel}
}

// Status returns Options that set only the status
func Status(code domain.StatusCode) Options {
	return Options{Status: &code}
}

// With returns a copy of o with the fields set in other applied on top
func (o Options) With(other Options) Options {
	if other.WorkspaceID != nil {
		o.WorkspaceID = other.WorkspaceID
	}
	if other.Scans != nil {
		o.Scans = other.Scans
	}
	if other.Status != nil {
		o.Status = other.Status
	}
	return o
}

// merge applies the set fields of o over base
func merge(base domain.WidgetState, o Options) domain.WidgetState {
	if o.WorkspaceID != nil {
		base.WorkspaceID = *o.WorkspaceID
	}
	if o.Scans != nil {
		base.Scans = *o.Scans
	}
	if o.Status != nil {
		base.Status = *o.Status
	}
	return base
}

// Option configures a StatusTable at construction
type Option func(*StatusTable)

// WithStatusHook installs the hook called after the user picks a status
func WithStatusHook(hook func(domain.StatusCode)) Option {
	return func(t *StatusTable) {
		if hook != nil {
			t.onStatusChange = hook
		}
	}
}

// WithLogger sets the logger used for render tracing
func WithLogger(logger *slog.Logger) Option {
	return func(t *StatusTable) {
		if logger != nil {
			t.logger = logger
		}
	}
}
