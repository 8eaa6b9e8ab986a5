// Package view provides view composition helpers for the TUI.
package view

// ViewState contains pre-rendered content for the final frame.
type ViewState struct {
	Width            int
	Height           int
	Content          string
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}
	return state.Content
}
