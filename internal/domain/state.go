package domain

// RenderMode is the view a status table shows
type RenderMode int

const (
	// ModeError is shown while the workspace or scan selection is missing
	ModeError RenderMode = iota
	// ModePopulated shows the status table for the selected scans
	ModePopulated
)

func (m RenderMode) String() string {
	switch m {
	case ModePopulated:
		return "populated"
	default:
		return "error"
	}
}

// ModeFor decides the render mode from the selection alone
func ModeFor(workspace WorkspaceID, scans ScanSelection) RenderMode {
	if !workspace.Valid() || !scans.Selected() {
		return ModeError
	}
	return ModePopulated
}

// WidgetState is the configuration a status table renders from
type WidgetState struct {
	WorkspaceID WorkspaceID
	Scans       ScanSelection
	Status      StatusCode
}

// DefaultWidgetState returns the state used for unset configuration
func DefaultWidgetState() WidgetState {
	return WidgetState{
		WorkspaceID: NoWorkspace,
		Scans:       NoScans(),
		Status:      DefaultStatus,
	}
}

// Mode returns the render mode for the state
func (s WidgetState) Mode() RenderMode {
	return ModeFor(s.WorkspaceID, s.Scans)
}
