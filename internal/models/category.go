package models

// Category is a named grouping for tasks and events. Name is the natural
// key and is unique under case-insensitive comparison; ID stays stable
// across renames so referencing entities never need rewriting on rename.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
