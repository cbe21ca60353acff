package statustable

import "statustable/internal/domain"

// TemplateName selects one of the widget templates
type TemplateName string

const (
	// TemplateInit renders the populated status table
	TemplateInit TemplateName = "init"
	// TemplateError renders the missing selection notice
	TemplateError TemplateName = "error"
)

// Vars are the named values passed to a template
type Vars struct {
	Scans  domain.ScanSelection
	Status domain.StatusCode
}

// Templates produces markup for the widget. Findings are only passed to
// the init template.
type Templates interface {
	Render(name TemplateName, findings []domain.Finding, vars Vars) (string, error)
}

// TemplatesFunc adapts a function to Templates
type TemplatesFunc func(name TemplateName, findings []domain.Finding, vars Vars) (string, error)

// Render calls f
func (f TemplatesFunc) Render(name TemplateName, findings []domain.Finding, vars Vars) (string, error) {
	return f(name, findings, vars)
}
