package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventStatusChanged    EventType = "StatusChanged"
	EventSelectionChanged EventType = "SelectionChanged"
	EventFindingsLoaded   EventType = "FindingsLoaded"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// StatusChangedEvent is emitted when the user picks a status
type StatusChangedEvent struct {
	Status StatusCode
}

func (e StatusChangedEvent) Type() EventType { return EventStatusChanged }

// SelectionChangedEvent is emitted when the host changes workspace or scans
type SelectionChangedEvent struct {
	WorkspaceID WorkspaceID
	Scans       []ScanID
	Selected    bool // false when no scan selection is present
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// FindingsLoadedEvent is emitted when a workspace's findings are loaded
type FindingsLoadedEvent struct {
	WorkspaceID WorkspaceID
	Count       int
}

func (e FindingsLoadedEvent) Type() EventType { return EventFindingsLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
