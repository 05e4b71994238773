package keymap

// Contexts in which bindings apply.
const (
	ContextViewer  = "viewer"
	ContextGlobal  = "global"
	ContextGallery = "gallery"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Viewer
	{ActionClose, []string{"esc"}, "Close viewer", ContextViewer},
	{ActionPrevious, []string{"left"}, "Previous image", ContextViewer},
	{ActionNext, []string{"right"}, "Next image", ContextViewer},
	{ActionZoomIn, []string{"+", "="}, "Zoom in", ContextViewer},
	{ActionZoomOut, []string{"-"}, "Zoom out", ContextViewer},
	{ActionResetZoom, []string{"0"}, "Reset zoom", ContextViewer},

	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionToggleThumbnails, []string{"t"}, "Toggle thumbnails", ContextGlobal},
	{ActionReopen, []string{"o"}, "Open viewer", ContextGlobal},
	{ActionFirst, []string{"home"}, "First image", ContextGlobal},
	{ActionLast, []string{"end"}, "Last image", ContextGlobal},
	{ActionJump, []string{"g"}, "Go to image", ContextGlobal},
	{ActionToggleLoop, []string{"L"}, "Toggle looping", ContextGlobal},

	// Gallery list
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextGallery},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextGallery},
	{ActionSelect, []string{"enter"}, "Open at image", ContextGallery},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
