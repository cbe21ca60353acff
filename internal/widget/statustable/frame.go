package statustable

// frame owns the rendered content and replaces it wholesale on refresh
type frame struct {
	content string
	renders int
}

// refresh produces new markup and swaps it in. On error the previous
// content stays and the error is returned as is.
func (f *frame) refresh(produce func() (string, error)) error {
	markup, err := produce()
	if err != nil {
		return err
	}
	f.content = markup
	f.renders++
	return nil
}
