// Package statustable implements the finding status table widget.
//
// The widget holds a workspace, an optional scan selection and the current
// status. It shows the error template until both a workspace and a scan
// selection are present, and the init template with every finding
// afterwards. All methods must be called from the owning UI loop.
package statustable

import (
	"log/slog"

	"statustable/internal/domain"
	"statustable/internal/logic"
)

// StatusTable is the status picking widget
type StatusTable struct {
	frame

	state     domain.WidgetState
	templates Templates
	findings  logic.FindingModel

	onStatusChange func(domain.StatusCode)
	logger         *slog.Logger
}

// New builds a widget from opts merged over the defaults and renders it
// once. Render errors are returned without wrapping.
func New(templates Templates, findings logic.FindingModel, opts Options, options ...Option) (*StatusTable, error) {
	t := &StatusTable{
		state:          merge(domain.DefaultWidgetState(), opts),
		templates:      templates,
		findings:       findings,
		onStatusChange: func(domain.StatusCode) {},
		logger:         slog.Default(),
	}
	for _, opt := range options {
		opt(t)
	}

	if err := t.updateView(); err != nil {
		return nil, err
	}
	return t, nil
}

// Update merges opts over the current state and renders again.
// An empty Options still renders.
func (t *StatusTable) Update(opts Options) error {
	t.state = merge(t.state, opts)
	return t.updateView()
}

// HandleStatusPick stores the raw value from the status control, notifies
// the status hook and renders again. The value is not validated.
func (t *StatusTable) HandleStatusPick(raw domain.StatusCode) error {
	t.state.Status = raw
	t.onStatusChange(raw)
	return t.updateView()
}

// Status returns the current status
func (t *StatusTable) Status() domain.StatusCode {
	return t.state.Status
}

// State returns a copy of the widget state
func (t *StatusTable) State() domain.WidgetState {
	return t.state
}

// Mode returns the view the current state renders
func (t *StatusTable) Mode() domain.RenderMode {
	return t.state.Mode()
}

// Content returns the markup of the last successful render
func (t *StatusTable) Content() string {
	return t.content
}

// Renders returns how many times the content has been replaced
func (t *StatusTable) Renders() int {
	return t.renders
}

func (t *StatusTable) updateView() error {
	return t.refresh(t.produce)
}

func (t *StatusTable) produce() (string, error) {
	mode := t.state.Mode()
	t.logger.Debug("rendering status table",
		"mode", mode.String(),
		"workspace", int(t.state.WorkspaceID),
		"scans", t.state.Scans.Len(),
		"status", t.state.Status.String())

	if mode == domain.ModeError {
		return t.templates.Render(TemplateError, nil, Vars{Status: t.state.Status})
	}
	return t.templates.Render(TemplateInit, t.findings.FindAll(), Vars{
		Scans:  t.state.Scans,
		Status: t.state.Status,
	})
}
