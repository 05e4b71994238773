// Package keymap defines key bindings and action dispatch for the viewer.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Viewer actions: routed through the input router while the viewer is
	// open.
	ActionClose     Action = "close"
	ActionPrevious  Action = "previous"
	ActionNext      Action = "next"
	ActionZoomIn    Action = "zoom_in"
	ActionZoomOut   Action = "zoom_out"
	ActionResetZoom Action = "reset_zoom"

	// Global actions
	ActionQuit             Action = "quit"
	ActionHelp             Action = "help"
	ActionToggleThumbnails Action = "toggle_thumbnails"
	ActionReopen           Action = "reopen"
	ActionFirst            Action = "first"
	ActionLast             Action = "last"
	ActionJump             Action = "jump"
	ActionToggleLoop       Action = "toggle_loop"

	// Gallery list actions (viewer closed)
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select"
)
