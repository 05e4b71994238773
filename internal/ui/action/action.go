// Package action carries the results of popups back to the app.
package action

// Action is a popup result. ActionType names it in debug logs.
type Action interface {
	ActionType() string
}

// Msg is the tea message delivering an Action from the component named
// by Source.
type Msg struct {
	Source string
	Action Action
}
